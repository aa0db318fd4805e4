package jwt

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:  "test-secret-key-for-unit-testing-2026",
		SessionTTL: ttl,
	})
}

func TestGenerateAndParseSessionToken(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.GenerateSessionToken("sess-1", "7", "Siti", "admin", "https://cdn.example/a.png")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.SessionID != "sess-1" {
		t.Errorf("expected SessionID=sess-1, got %s", claims.SessionID)
	}
	if claims.Name != "Siti" || claims.Role != "admin" {
		t.Errorf("unexpected display fields: %+v", claims)
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 59*time.Minute || ttl > 61*time.Minute {
		t.Errorf("expected ttl around 1h, got %v", ttl)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.GenerateSessionToken("sess-1", "7", "Siti", "admin", "")
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewManager(&config.AuthConfig{JWTSecret: "another-secret-of-enough-length", SessionTTL: time.Hour})

	token, _ := other.GenerateSessionToken("sess-1", "7", "Siti", "admin", "")
	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_RejectsNoneAlgorithm(t *testing.T) {
	m := newTestManager(time.Hour)

	claims := Claims{
		SessionID: "sess-1",
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodNone, claims)
	raw, _ := token.SignedString(jwtv5.UnsafeAllowNoneSignatureType)

	if _, err := m.ParseToken(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager(time.Hour)
	if _, err := m.ParseToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
