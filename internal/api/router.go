package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/portfolio-site/portfolio-api/docs"
	"github.com/portfolio-site/portfolio-api/internal/api/handler"
	"github.com/portfolio-site/portfolio-api/internal/api/middleware"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

// Services groups everything the HTTP layer calls into.
type Services struct {
	Profile        ports.ProfileService
	Projects       ports.ProjectService
	Contact        ports.ContactService
	Analytics      ports.AnalyticsService
	Recorder       ports.EventRecorder
	Visualizations ports.VisualizationService
	Resume         ports.ResumeService
	Admin          ports.AdminService
	// Checks are run by the readiness probe, keyed by dependency name.
	Checks map[string]handler.Check
}

type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	// TrustedProxies are the IPs or CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string
	AdminToken     string
	JWTSecret      string
	ResumeMaxBytes int64
	Logger         zerolog.Logger
	// Registerer receives the HTTP metrics; nil means the default registry.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	proxies, err := middleware.ParseTrustedProxies(opts.TrustedProxies)
	if err != nil {
		opts.Logger.Error().Err(err).Msg("ignoring trusted proxies, using the direct peer address")
		proxies = nil
	}
	e.IPExtractor = middleware.ClientIPExtractor(proxies)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portfolio",
		Registerer: opts.Registerer,
	}))
	e.Use(middleware.OriginGuard(opts.AllowedOrigins))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.HeaderAdminToken,
		},
	}))

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(svc.Checks).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	docs.SwaggerInfo.BasePath = opts.APIPrefix
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	adminOnly := middleware.AdminAuth(middleware.AdminAuthConfig{
		Token:     opts.AdminToken,
		JWTSecret: opts.JWTSecret,
	})

	api := e.Group(opts.APIPrefix)

	profile := handler.NewProfileHandler(svc.Profile)
	api.GET("/profile", profile.Get)
	api.PUT("/profile", profile.Replace, adminOnly)

	projects := handler.NewProjectHandler(svc.Projects)
	api.GET("/projects", projects.List)
	api.GET("/projects/:id", projects.Get)
	api.POST("/projects", projects.Create, adminOnly)
	api.PUT("/projects/:id", projects.Update, adminOnly)
	api.DELETE("/projects/:id", projects.Delete, adminOnly)

	contact := handler.NewContactHandler(svc.Contact)
	api.POST("/contact", contact.Submit)
	api.GET("/contact", contact.List, adminOnly)
	api.PUT("/contact/:id/read", contact.MarkRead, adminOnly)

	analytics := handler.NewAnalyticsHandler(svc.Analytics, svc.Recorder)
	api.POST("/analytics/visit", analytics.LogVisit)
	api.POST("/analytics/download", analytics.LogDownload)
	api.GET("/analytics/stats", analytics.Stats, adminOnly)

	resume := handler.NewResumeHandler(svc.Resume)
	api.GET("/resume/download", resume.Download)
	api.POST("/resume/upload", resume.Upload, adminOnly, echomiddleware.BodyLimit(uploadLimit(opts.ResumeMaxBytes)))

	visualizations := handler.NewVisualizationHandler(svc.Visualizations)
	api.GET("/visualizations", visualizations.ListActive)
	api.GET("/visualizations/all", visualizations.ListAll, adminOnly)
	api.POST("/visualizations", visualizations.Create, adminOnly)
	api.PUT("/visualizations/:id", visualizations.Update, adminOnly)
	api.DELETE("/visualizations/:id", visualizations.Delete, adminOnly)

	admin := handler.NewAdminHandler(svc.Admin)
	api.POST("/admin/login", admin.Login)

	return e
}

// uploadLimit leaves room for the multipart envelope around the file itself.
func uploadLimit(maxBytes int64) string {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return fmt.Sprintf("%dK", maxBytes/1024+64)
}
