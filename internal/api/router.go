package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/integra/health-sport-site/internal/api/handler"
	"github.com/integra/health-sport-site/internal/api/middleware"
	"github.com/integra/health-sport-site/internal/api/view"
	"github.com/integra/health-sport-site/internal/core/ports"
	"github.com/integra/health-sport-site/internal/infrastructure/session"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Logger    zerolog.Logger
	Catalog   ports.CatalogService
	Contacts  ports.ContactService
	Auth      ports.AuthService
	Sessions  *session.Manager
	StaticDir string
	// HealthChecks back GET /health/ready, keyed by dependency name.
	HealthChecks map[string]handler.Check

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = view.MustNewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "integra",
		Subsystem:  "http",
		Registerer: d.Registerer,
	}))

	// --- Static assets and probes (no session) ---
	if d.StaticDir != "" {
		e.Static("/static", d.StaticDir)
	}

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: d.Gatherer,
	}))

	// --- Site ---
	sess := middleware.Session(d.Sessions, d.Logger)
	requireAdmin := middleware.RequireAdmin()

	pages := handler.NewPageHandler(d.Catalog)
	contacts := handler.NewContactHandler(d.Contacts, d.Logger)
	admin := handler.NewAdminHandler(d.Auth, d.Contacts, d.Logger)

	e.GET("/", pages.Home)
	e.GET("/nosotros", pages.About)
	e.GET("/servicios", pages.Services)
	e.GET("/servicio/:id", pages.ServiceDetail)

	e.GET("/contactos", contacts.Form, sess)
	e.POST("/contacto", contacts.Submit, sess)

	e.GET(middleware.LoginPath, admin.Shell, sess)
	e.POST(middleware.LoginPath, admin.Login, sess)
	e.GET("/admin/contactos", admin.Contacts, sess, requireAdmin)
	e.POST("/admin/contactos/delete/:id", admin.Delete, sess, requireAdmin)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
