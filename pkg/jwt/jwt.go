package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
)

var (
	ErrTokenExpired = errors.New("session token expired")
	ErrTokenInvalid = errors.New("session token invalid")
)

const issuer = "sipusaka-dashboard"

// Claims the session cookie payload.
// The upstream bearer token is never put in the cookie; only the session id that keys it in Redis.
type Claims struct {
	SessionID string `json:"sid"`
	UserID    string `json:"uid"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	jwtv5.RegisteredClaims
}

// Manager signs and verifies session cookies
type Manager struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewManager creates a Manager from the auth config
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.JWTSecret),
		sessionTTL: cfg.SessionTTL,
	}
}

// TTL lifetime of newly issued session tokens
func (m *Manager) TTL() time.Duration { return m.sessionTTL }

// GenerateSessionToken signs a session token for the given session and display fields
func (m *Manager) GenerateSessionToken(sessionID, userID, name, role, avatar string) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		UserID:    userID,
		Name:      name,
		Role:      role,
		Avatar:    avatar,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.sessionTTL)),
			Issuer:    issuer,
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken parses and verifies a session token
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwtv5.WithIssuer(issuer))

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
