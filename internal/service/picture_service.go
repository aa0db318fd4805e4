package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
)

// PictureService photo upload checks and stored-photo removal
type PictureService interface {
	// Validate rejects a file that is empty, too large, not an allowed image type or
	// not decodable. On success ContentType is set to the sniffed type. A nil file is valid.
	Validate(f *gateway.File) error
	// DeleteByURL removes the stored object behind a public photo URL
	DeleteByURL(ctx context.Context, rawURL string) error
}

type pictureService struct {
	repo     *repository.Repository
	maxBytes int64
	allowed  map[string]bool
	logger   *zap.Logger
}

// NewPictureService creates a PictureService
func NewPictureService(repo *repository.Repository, cfg *config.UploadConfig, logger *zap.Logger) PictureService {
	allowed := make(map[string]bool, len(cfg.AllowedMimes))
	for _, m := range cfg.AllowedMimes {
		allowed[strings.ToLower(m)] = true
	}
	return &pictureService{repo: repo, maxBytes: cfg.MaxBytes, allowed: allowed, logger: logger}
}

func (s *pictureService) Validate(f *gateway.File) error {
	if f == nil {
		return nil
	}
	if len(f.Content) == 0 {
		return &apperrors.FileError{Reason: "file is empty"}
	}
	if s.maxBytes > 0 && int64(len(f.Content)) > s.maxBytes {
		return &apperrors.FileError{Reason: fmt.Sprintf("file is larger than %d KB", s.maxBytes/1024)}
	}

	mime := http.DetectContentType(f.Content)
	if !s.allowed[mime] {
		return &apperrors.FileError{Reason: "unsupported file type " + mime}
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(f.Content)); err != nil {
		return &apperrors.FileError{Reason: "file is not a readable image"}
	}

	f.ContentType = mime
	return nil
}

func (s *pictureService) DeleteByURL(ctx context.Context, rawURL string) error {
	key, err := PictureKey(rawURL)
	if err != nil {
		return err
	}
	if err := s.repo.Picture.Delete(ctx, key); err != nil {
		s.logger.Warn("delete picture failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// PictureKey the object-storage key of a public photo URL: its path without the leading slash
func PictureKey(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", &apperrors.ValidationError{Field: "url", Reason: "not an absolute URL"}
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", &apperrors.ValidationError{Field: "url", Reason: "URL has no object key"}
	}
	return key, nil
}
