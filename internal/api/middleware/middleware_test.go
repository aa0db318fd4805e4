package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── fakes ──

type fakeResolver struct {
	sessions map[string]*model.Session
	err      error
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (*model.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.sessions[token]; ok {
		return s, nil
	}
	return nil, apperrors.ErrNoSession
}

type fakeLimiter struct {
	hits map[string]int
}

func (f *fakeLimiter) CheckRateLimit(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	f.hits[key]++
	return f.hits[key] <= limit, nil
}

func newResolver() *fakeResolver {
	return &fakeResolver{sessions: map[string]*model.Session{
		"good":  {ID: "s1", Token: "upstream-abc", UserID: "7", Role: model.RoleOperator},
		"admin": {ID: "s2", Token: "upstream-def", UserID: "1", Role: model.RoleAdmin},
	}}
}

func gatedRouter(res SessionResolver) *gin.Engine {
	r := gin.New()
	r.Use(SessionGate(res, "sipusaka_session", "/signin"))
	r.GET("/homes", func(c *gin.Context) {
		tok, err := gateway.ContextTokens{}.Token(c.Request.Context())
		if err != nil {
			c.String(http.StatusTeapot, err.Error())
			return
		}
		c.String(http.StatusOK, tok)
	})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return resp
}

// ── SessionGate ──

func TestSessionGate_APIWithoutSession(t *testing.T) {
	r := gatedRouter(newResolver())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/homes", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if resp := decode(t, w); resp.Code != response.CodeUnauthenticated {
		t.Errorf("expected code %d, got %d", response.CodeUnauthenticated, resp.Code)
	}
}

func TestSessionGate_PageRedirectsToSignIn(t *testing.T) {
	r := gatedRouter(newResolver())

	req := httptest.NewRequest(http.MethodGet, "/homes?page=2", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/signin?callbackUrl=%2Fhomes%3Fpage%3D2" {
		t.Errorf("unexpected Location %s", loc)
	}
}

func TestSessionGate_CookieSessionExposesUpstreamToken(t *testing.T) {
	r := gatedRouter(newResolver())

	req := httptest.NewRequest(http.MethodGet, "/homes", nil)
	req.AddCookie(&http.Cookie{Name: "sipusaka_session", Value: "good"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "upstream-abc" {
		t.Fatalf("expected upstream token on context, got %d %s", w.Code, w.Body.String())
	}
}

func TestSessionGate_BearerSession(t *testing.T) {
	r := gatedRouter(newResolver())

	req := httptest.NewRequest(http.MethodGet, "/homes", nil)
	req.Header.Set("Authorization", "Bearer admin")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != "upstream-def" {
		t.Fatalf("expected bearer session accepted, got %d %s", w.Code, w.Body.String())
	}
}

func TestSessionGate_StoreFailureIs500(t *testing.T) {
	r := gatedRouter(&fakeResolver{err: errors.New("redis down")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/homes", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestRedirectIfAuthenticated(t *testing.T) {
	r := gin.New()
	r.GET("/signin", RedirectIfAuthenticated(newResolver(), "sipusaka_session", "/"), func(c *gin.Context) {
		c.String(http.StatusOK, "form")
	})

	req := httptest.NewRequest(http.MethodGet, "/signin", nil)
	req.AddCookie(&http.Cookie{Name: "sipusaka_session", Value: "good"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %s", w.Code, w.Header().Get("Location"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/signin", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected sign-in form for anonymous user, got %d", w.Code)
	}
}

func TestRoleAuth(t *testing.T) {
	r := gin.New()
	r.Use(SessionGate(newResolver(), "sipusaka_session", "/signin"))
	r.GET("/staff", RoleAuth(model.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	for token, want := range map[string]int{"good": http.StatusForbidden, "admin": http.StatusOK} {
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != want {
			t.Errorf("%s: expected %d, got %d", token, want, w.Code)
		}
	}
}

func TestParamRoleAuth(t *testing.T) {
	r := gin.New()
	r.Use(SessionGate(newResolver(), "sipusaka_session", "/signin"))
	r.GET("/export/:entity", ParamRoleAuth("entity", map[string][]string{"staff": {model.RoleAdmin}}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	cases := []struct {
		token, path string
		want        int
	}{
		{"good", "/export/staff", http.StatusForbidden},
		{"admin", "/export/staff", http.StatusOK},
		{"good", "/export/employees", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.path, nil)
		req.Header.Set("Authorization", "Bearer "+tc.token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Errorf("%s %s: expected %d, got %d", tc.token, tc.path, tc.want, w.Code)
		}
	}
}

// ── RateLimit ──

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/api/auth/signin", RateLimit(&fakeLimiter{hits: map[string]int{}}, 2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/signin", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected status sequence %v", codes)
	}
}

func TestRateLimit_NilLimiterPasses(t *testing.T) {
	r := gin.New()
	r.GET("/x", RateLimit(nil, 1, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}
}

// ── RequestID / CORS / BodyLimit ──

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") != "abc-123" || w.Body.String() != "abc-123" {
		t.Errorf("expected caller id kept, got %s", w.Header().Get("X-Request-ID"))
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("a", 100))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); len(got) != 36 {
		t.Errorf("expected generated uuid for oversized id, got %q", got)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("expected origin allowed")
	}

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("unknown origin must not be allowed")
	}
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/x", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			_ = c.Error(err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("0123456789")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("0123")))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
