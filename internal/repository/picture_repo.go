package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
)

// PictureRepository removes stored photos from object storage through the backend
type PictureRepository interface {
	Delete(ctx context.Context, key string) error
}

type pictureRepo struct {
	up Upstream
}

// NewPictureRepo creates a PictureRepository
func NewPictureRepo(up Upstream) PictureRepository {
	return &pictureRepo{up: up}
}

func (r *pictureRepo) Delete(ctx context.Context, key string) error {
	resp, err := r.up.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   PathDeletePicture,
		Body:   gateway.JSONPayload{Value: map[string]any{"key": key}},
	})
	if err != nil {
		return err
	}
	if err := gateway.DecodeJSON(resp, nil); err != nil {
		return fmt.Errorf("delete picture %s: %w", key, err)
	}
	return nil
}
