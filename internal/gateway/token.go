package gateway

import (
	"context"

	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
)

// TokenProvider yields the bearer token for the current caller, or fails.
// Implementations return apperrors.ErrNoSession when there is no session.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenProvider
type TokenFunc func(ctx context.Context) (string, error)

// Token calls f
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken always yields the same token. Used by the CLI and tests.
type StaticToken string

// Token returns the token, or ErrNoSession when it is empty
func (s StaticToken) Token(context.Context) (string, error) {
	if s == "" {
		return "", apperrors.ErrNoSession
	}
	return string(s), nil
}

type tokenKey struct{}

// ContextWithToken attaches a session's bearer token to ctx
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// ContextTokens reads the token placed on the request context by the session gate
type ContextTokens struct{}

// Token returns the token attached with ContextWithToken
func (ContextTokens) Token(ctx context.Context) (string, error) {
	token, _ := ctx.Value(tokenKey{}).(string)
	if token == "" {
		return "", apperrors.ErrNoSession
	}
	return token, nil
}
