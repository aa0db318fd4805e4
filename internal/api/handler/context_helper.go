package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/api/middleware"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

// MustGetSession the session admitted by the gate.
// Writes a 401 and returns false when the gate did not run; callers return on false.
func MustGetSession(c *gin.Context) (*model.Session, bool) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthenticated, "authentication required")
		return nil, false
	}
	return sess, true
}

// MustGetID the positive integer :id path parameter. Writes a 400 and returns false otherwise.
func MustGetID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, response.CodeBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// formPhoto reads the photo part named field of a multipart request.
// Non-multipart requests and a missing part yield nil.
func formPhoto(c *gin.Context, field string) (*gateway.File, error) {
	if field == "" || !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	return &gateway.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
