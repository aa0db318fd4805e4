package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
)

func signInOK(mocks *mockRepos) {
	mocks.auth.result = &repository.LoginResult{
		Token: "upstream-token",
		User:  repository.LoginUser{UserID: float64(7), Username: "admin", Name: "Administrator", Role: "admin"},
	}
}

func TestAuthService_SignIn_CreatesSession(t *testing.T) {
	svc, mocks, store := setupTestService()
	signInOK(mocks)

	res, err := svc.Auth.SignIn(context.Background(), &dto.SignInRequest{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("SignIn should succeed: %v", err)
	}
	if res.Token == "" || res.Session.ID == "" {
		t.Fatal("expected session token and id")
	}
	if res.Session.UserID != "7" {
		t.Errorf("expected userId 7, got %s", res.Session.UserID)
	}
	if _, ok := store.sessions[res.Session.ID]; !ok {
		t.Fatal("expected session stored")
	}
	if store.ttls[res.Session.ID] <= 0 {
		t.Error("expected positive session ttl")
	}

	sess, err := svc.Auth.Resolve(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("Resolve should succeed: %v", err)
	}
	if sess.Token != "upstream-token" {
		t.Errorf("expected upstream token in session, got %s", sess.Token)
	}

	status := svc.Auth.Status(context.Background(), res.Token)
	if status.Status != model.SessionAuthenticated || status.Name != "Administrator" || status.ExpiresIn <= 0 {
		t.Errorf("unexpected status %+v", status)
	}
}

func TestAuthService_SignIn_AccessTokenFallback(t *testing.T) {
	svc, mocks, _ := setupTestService()
	mocks.auth.result = &repository.LoginResult{AccessToken: "alt", User: repository.LoginUser{Username: "op"}}

	res, err := svc.Auth.SignIn(context.Background(), &dto.SignInRequest{Username: "op", Password: "x"})
	if err != nil {
		t.Fatalf("SignIn should succeed: %v", err)
	}
	if res.Session.Token != "alt" || res.Session.Name != "op" || res.Session.UserID != "op" {
		t.Errorf("unexpected session %+v", res.Session)
	}
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	svc, mocks, store := setupTestService()
	mocks.auth.err = &apperrors.UpstreamError{Status: 401, Message: "wrong password"}

	_, err := svc.Auth.SignIn(context.Background(), &dto.SignInRequest{Username: "admin", Password: "bad"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Error("no session expected")
	}
}

func TestAuthService_SignIn_NoToken(t *testing.T) {
	svc, mocks, _ := setupTestService()
	mocks.auth.result = &repository.LoginResult{}

	_, err := svc.Auth.SignIn(context.Background(), &dto.SignInRequest{Username: "admin", Password: "x"})
	if !errors.Is(err, ErrNoUpstreamToken) {
		t.Fatalf("expected ErrNoUpstreamToken, got %v", err)
	}
}

func TestAuthService_Resolve_Garbage(t *testing.T) {
	svc, _, _ := setupTestService()

	if _, err := svc.Auth.Resolve(context.Background(), "not-a-jwt"); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if _, err := svc.Auth.Resolve(context.Background(), ""); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if st := svc.Auth.Status(context.Background(), "not-a-jwt"); st.Status != model.SessionUnauthenticated {
		t.Errorf("expected unauthenticated, got %s", st.Status)
	}
}

func TestAuthService_SignOut(t *testing.T) {
	svc, mocks, store := setupTestService()
	signInOK(mocks)

	res, err := svc.Auth.SignIn(context.Background(), &dto.SignInRequest{Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("SignIn should succeed: %v", err)
	}
	if err := svc.Auth.SignOut(context.Background(), res.Token); err != nil {
		t.Fatalf("SignOut should succeed: %v", err)
	}
	if len(store.sessions) != 0 {
		t.Error("expected session removed")
	}
	if _, err := svc.Auth.Resolve(context.Background(), res.Token); !errors.Is(err, apperrors.ErrNoSession) {
		t.Errorf("signed-out cookie must not resolve, got %v", err)
	}
	if err := svc.Auth.SignOut(context.Background(), "garbage"); err != nil {
		t.Errorf("signing out an invalid cookie is a no-op, got %v", err)
	}
}
