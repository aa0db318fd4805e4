package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

const sessionKey = "session"

// SessionResolver maps a session cookie to its live session
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*model.Session, error)
}

// SessionToken the session JWT of the request: the cookie, else Authorization: Bearer
func SessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// wantsPage reports whether the request is a browser navigation rather than an API call
func wantsPage(c *gin.Context) bool {
	return c.Request.Method == http.MethodGet && strings.Contains(c.GetHeader("Accept"), "text/html")
}

// SessionGate admits only requests with a live session.
// Page navigations without one are redirected to signInPath, API calls get 401.
// Admitted requests carry the session's upstream token on their context for the gateway.
func SessionGate(auth SessionResolver, cookieName, signInPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := auth.Resolve(c.Request.Context(), SessionToken(c, cookieName))
		if err != nil {
			if !errors.Is(err, apperrors.ErrNoSession) {
				_ = c.Error(err)
				response.InternalError(c)
				c.Abort()
				return
			}
			if wantsPage(c) {
				target := signInPath + "?callbackUrl=" + url.QueryEscape(c.Request.URL.RequestURI())
				c.Redirect(http.StatusFound, target)
				c.Abort()
				return
			}
			response.Unauthorized(c, response.CodeUnauthenticated, "authentication required")
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Request = c.Request.WithContext(gateway.ContextWithToken(c.Request.Context(), sess.Token))

		c.Next()
	}
}

// RedirectIfAuthenticated sends a signed-in user away from the sign-in page to home
func RedirectIfAuthenticated(auth SessionResolver, cookieName, home string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := auth.Resolve(c.Request.Context(), SessionToken(c, cookieName)); err == nil {
			c.Redirect(http.StatusFound, home)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession the session SessionGate admitted
func CurrentSession(c *gin.Context) (*model.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*model.Session)
	return sess, ok
}

// RoleAuth admits only sessions with one of the allowed roles
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			response.Unauthorized(c, response.CodeUnauthenticated, "authentication required")
			c.Abort()
			return
		}

		for _, r := range allowedRoles {
			if sess.Role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, response.CodeForbidden, "insufficient role")
		c.Abort()
	}
}

// ParamRoleAuth applies RoleAuth only when the path parameter names a restricted
// value, e.g. the staff export behind a shared /export/:entity route
func ParamRoleAuth(param string, restricted map[string][]string) gin.HandlerFunc {
	guards := make(map[string]gin.HandlerFunc, len(restricted))
	for value, roles := range restricted {
		guards[value] = RoleAuth(roles...)
	}
	return func(c *gin.Context) {
		if guard, ok := guards[c.Param(param)]; ok {
			guard(c)
			return
		}
		c.Next()
	}
}
