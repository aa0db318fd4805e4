package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
)

// LoginUser the display fields the backend returns on sign-in
type LoginUser struct {
	UserID   any    `json:"userId"`
	ID       any    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

// LoginResult the backend's answer to a credentials grant.
// The token arrives as either "token" or "access_token".
type LoginResult struct {
	Token       string    `json:"token"`
	AccessToken string    `json:"accessToken"`
	User        LoginUser `json:"user"`
}

// BearerToken the token to forward on later calls
func (r *LoginResult) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// AuthRepository exchanges credentials for a bearer token
type AuthRepository interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authRepo struct {
	up Upstream
}

// NewAuthRepo creates an AuthRepository
func NewAuthRepo(up Upstream) AuthRepository {
	return &authRepo{up: up}
}

func (r *authRepo) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	resp, err := r.up.Public(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   PathLogin,
		Body:   gateway.JSONPayload{Value: map[string]any{"username": username, "password": password}},
	})
	if err != nil {
		return nil, err
	}
	var out LoginResult
	if err := gateway.DecodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out, nil
}
