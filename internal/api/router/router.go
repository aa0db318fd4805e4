package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/api/handler"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/api/middleware"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/model"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/service"
)

// resourceRoutes the CRUD surface every entity handler exposes
type resourceRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func mount(g *gin.RouterGroup, path string, h resourceRoutes, guards ...gin.HandlerFunc) {
	rg := g.Group(path, guards...)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// Setup builds the gin engine. limiter may be nil, which disables sign-in rate limiting.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	sessions middleware.SessionResolver,
	limiter middleware.RateLimiter,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── health & metrics ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	cookie := cfg.Auth.Cookie.Name
	gate := middleware.SessionGate(sessions, cookie, cfg.Auth.SignInPath)

	// ── pages ──
	r.GET(cfg.Auth.SignInPath, middleware.RedirectIfAuthenticated(sessions, cookie, "/"), h.Auth.Session)
	r.GET("/", gate, h.Dashboard.Counts)

	// ── auth ──
	auth := r.Group("/api/auth")
	{
		auth.POST("/signin", middleware.RateLimit(limiter, cfg.Auth.SignInRateLimit, cfg.Auth.SignInWindow), h.Auth.SignIn)
		auth.GET("/session", h.Auth.Session)
		auth.POST("/signout", h.Auth.SignOut)
	}

	// ── API v1 ──
	v1 := r.Group("/api/v1", gate)
	{
		v1.GET("/me", h.Auth.Me)

		v1.GET("/dashboard/counts", h.Dashboard.Counts)
		v1.GET("/form-options", h.Dashboard.FormOptions)

		mount(v1, "/employees", h.Employee)
		mount(v1, "/partners", h.Partner)
		mount(v1, "/walis", h.Wali)
		mount(v1, "/children", h.Children)
		mount(v1, "/homes", h.Home)
		mount(v1, "/umkm", h.Umkm)
		mount(v1, "/staff", h.Staff, middleware.RoleAuth(model.RoleAdmin))

		export := v1.Group("/export")
		{
			export.GET("", h.Export.Entities)
			export.GET("/:entity", middleware.ParamRoleAuth("entity", map[string][]string{
				service.EntityStaff: {model.RoleAdmin},
			}), h.Export.Export)
		}

		v1.DELETE("/pictures", h.Picture.Delete)
	}

	return r
}
