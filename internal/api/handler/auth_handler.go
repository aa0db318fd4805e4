package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/api/middleware"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/response"
)

// AuthHandler sign-in, session status and sign-out
type AuthHandler struct {
	authSvc service.AuthService
	cfg     *config.AuthConfig
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService, cfg *config.AuthConfig) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, cfg: cfg}
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	switch strings.ToLower(h.cfg.Cookie.SameSite) {
	case "strict":
		c.SetSameSite(http.SameSiteStrictMode)
	case "none":
		c.SetSameSite(http.SameSiteNoneMode)
	default:
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(h.cfg.Cookie.Name, value, maxAge, "/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
}

// SignIn exchanges credentials for a session cookie
// POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBind(&req); err != nil {
		ve := bindError(err)
		response.BadRequest(c, response.CodeValidation, ve.Error())
		return
	}

	result, err := h.authSvc.SignIn(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err, nil)
		return
	}

	h.setCookie(c, result.Token, int(h.cfg.SessionTTL.Seconds()))
	response.OK(c, dto.SessionResponse{
		Status:    model.SessionAuthenticated,
		UserID:    result.Session.UserID,
		Name:      result.Session.Name,
		Role:      result.Session.Role,
		Avatar:    result.Session.Avatar,
		ExpiresIn: int(h.cfg.SessionTTL.Seconds()),
	})
}

// Session the current session status; never fails
// GET /api/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	status := h.authSvc.Status(c.Request.Context(), middleware.SessionToken(c, h.cfg.Cookie.Name))
	response.OK(c, status)
}

// SignOut ends the session and clears the cookie
// POST /api/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.authSvc.SignOut(c.Request.Context(), middleware.SessionToken(c, h.cfg.Cookie.Name)); err != nil {
		handleError(c, err, nil)
		return
	}
	h.setCookie(c, "", -1)
	response.OK(c, dto.SessionResponse{Status: model.SessionUnauthenticated})
}

// Me the profile of the signed-in user
// GET /api/v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}
	response.OK(c, dto.SessionResponse{
		Status: model.SessionAuthenticated,
		UserID: sess.UserID,
		Name:   sess.Name,
		Role:   sess.Role,
		Avatar: sess.Avatar,
	})
}
