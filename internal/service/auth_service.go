package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/jwt"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/redis"
)

// ── auth errors ──

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoUpstreamToken    = errors.New("sign-in response carried no token")
)

// SessionStore persists sessions by id. *redis.Client implements it.
type SessionStore interface {
	SaveSession(ctx context.Context, id string, payload []byte, ttl time.Duration) error
	LoadSession(ctx context.Context, id string) ([]byte, error)
	DeleteSession(ctx context.Context, id string) error
}

// SignInResult the signed session cookie value and the session it refers to
type SignInResult struct {
	Token   string
	Session *model.Session
}

// AuthService signs users in against the backend and resolves session cookies
type AuthService interface {
	SignIn(ctx context.Context, req *dto.SignInRequest) (*SignInResult, error)
	// Resolve maps a session cookie to its live session, or apperrors.ErrNoSession
	Resolve(ctx context.Context, token string) (*model.Session, error)
	// Status what the UI chrome shows; never fails
	Status(ctx context.Context, token string) *dto.SessionResponse
	SignOut(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	store  SessionStore
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService creates an AuthService
func NewAuthService(repo *repository.Repository, store SessionStore, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{repo: repo, store: store, jwtMgr: jwtMgr, logger: logger}
}

// ────────────────────── SignIn ──────────────────────

func (s *authService) SignIn(ctx context.Context, req *dto.SignInRequest) (*SignInResult, error) {
	res, err := s.repo.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if ue, ok := apperrors.AsUpstream(err); ok && rejectedCredentials(ue.Status) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("sign-in upstream failed", zap.Error(err))
		return nil, err
	}
	bearer := res.BearerToken()
	if bearer == "" {
		return nil, ErrNoUpstreamToken
	}

	sess := &model.Session{
		ID:        uuid.NewString(),
		Token:     bearer,
		UserID:    userID(res.User),
		Name:      res.User.Name,
		Role:      res.User.Role,
		Avatar:    res.User.Avatar,
		CreatedAt: time.Now(),
	}
	if sess.Name == "" {
		sess.Name = res.User.Username
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.store.SaveSession(ctx, sess.ID, payload, s.jwtMgr.TTL()); err != nil {
		s.logger.Error("save session failed", zap.Error(err))
		return nil, err
	}

	token, err := s.jwtMgr.GenerateSessionToken(sess.ID, sess.UserID, sess.Name, sess.Role, sess.Avatar)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	s.logger.Info("user signed in", zap.String("user_id", sess.UserID), zap.String("role", sess.Role))
	return &SignInResult{Token: token, Session: sess}, nil
}

func rejectedCredentials(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusUnprocessableEntity:
		return true
	}
	return false
}

func userID(u repository.LoginUser) string {
	switch {
	case u.UserID != nil:
		return fmt.Sprint(u.UserID)
	case u.ID != nil:
		return fmt.Sprint(u.ID)
	default:
		return u.Username
	}
}

// ────────────────────── Resolve ──────────────────────

func (s *authService) resolve(ctx context.Context, token string) (*model.Session, *jwt.Claims, error) {
	if token == "" {
		return nil, nil, apperrors.ErrNoSession
	}
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrNoSession, err)
	}
	raw, err := s.store.LoadSession(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, redis.ErrSessionNotFound) {
			return nil, nil, apperrors.ErrNoSession
		}
		return nil, nil, err
	}
	var sess model.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, nil, fmt.Errorf("%w: corrupt session", apperrors.ErrNoSession)
	}
	if sess.Token == "" {
		return nil, nil, apperrors.ErrNoSession
	}
	return &sess, claims, nil
}

func (s *authService) Resolve(ctx context.Context, token string) (*model.Session, error) {
	sess, _, err := s.resolve(ctx, token)
	return sess, err
}

func (s *authService) Status(ctx context.Context, token string) *dto.SessionResponse {
	sess, claims, err := s.resolve(ctx, token)
	if err != nil {
		return &dto.SessionResponse{Status: model.SessionUnauthenticated}
	}
	out := &dto.SessionResponse{
		Status: model.SessionAuthenticated,
		UserID: sess.UserID,
		Name:   sess.Name,
		Role:   sess.Role,
		Avatar: sess.Avatar,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresIn = int(time.Until(claims.ExpiresAt.Time).Seconds())
	}
	return out
}

// ────────────────────── SignOut ──────────────────────

// SignOut removes the session. An invalid or expired cookie has nothing to remove.
func (s *authService) SignOut(ctx context.Context, token string) error {
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		return nil
	}
	if err := s.store.DeleteSession(ctx, claims.SessionID); err != nil {
		s.logger.Error("delete session failed", zap.Error(err))
		return err
	}
	return nil
}
