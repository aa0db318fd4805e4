package repository

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
)

// ResourceRepository CRUD over one backend collection
type ResourceRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, body gateway.Payload) (*T, error)
	Update(ctx context.Context, id int64, body gateway.Payload) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type resourceRepo[T any] struct {
	up   Upstream
	path string
}

// NewResourceRepo creates a repository for the collection at path
func NewResourceRepo[T any](up Upstream, path string) ResourceRepository[T] {
	return &resourceRepo[T]{up: up, path: path}
}

func (r *resourceRepo[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (r *resourceRepo[T]) List(ctx context.Context) ([]T, error) {
	resp, err := r.up.Do(ctx, gateway.Request{Method: http.MethodGet, Path: r.path})
	if err != nil {
		return nil, err
	}
	var out []T
	if err := gateway.DecodeList(resp, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.path, err)
	}
	return out, nil
}

func (r *resourceRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	resp, err := r.up.Do(ctx, gateway.Request{Method: http.MethodGet, Path: r.itemPath(id)})
	if err != nil {
		return nil, err
	}
	var out T
	if err := gateway.DecodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("get %s: %w", r.itemPath(id), err)
	}
	return &out, nil
}

func (r *resourceRepo[T]) Create(ctx context.Context, body gateway.Payload) (*T, error) {
	resp, err := r.up.Do(ctx, gateway.Request{Method: http.MethodPost, Path: r.path, Body: body})
	if err != nil {
		return nil, err
	}
	var out T
	if err := gateway.DecodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.path, err)
	}
	return &out, nil
}

func (r *resourceRepo[T]) Update(ctx context.Context, id int64, body gateway.Payload) (*T, error) {
	resp, err := r.up.Do(ctx, gateway.Request{Method: http.MethodPut, Path: r.itemPath(id), Body: body})
	if err != nil {
		return nil, err
	}
	var out T
	if err := gateway.DecodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("update %s: %w", r.itemPath(id), err)
	}
	return &out, nil
}

func (r *resourceRepo[T]) Delete(ctx context.Context, id int64) error {
	resp, err := r.up.Do(ctx, gateway.Request{Method: http.MethodDelete, Path: r.itemPath(id)})
	if err != nil {
		return err
	}
	if err := gateway.DecodeJSON(resp, nil); err != nil {
		return fmt.Errorf("delete %s: %w", r.itemPath(id), err)
	}
	return nil
}
