package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"waitlist/backend/internal/config"
	"waitlist/backend/internal/handler"
	"waitlist/backend/internal/metrics"
	"waitlist/backend/internal/ratelimit"
)

// NewRouter assembles the echo instance: global middleware first (logging,
// security headers, CORS, rate limiting), then the /api routes.
func NewRouter(
	signupHandler *handler.SignupHandler,
	systemHandler *handler.SystemHandler,
	store ratelimit.Store,
	rec metrics.Recorder,
	cfg *config.Config,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(RequestLoggerMiddleware(rec))
	e.Use(SecurityHeadersMiddleware(cfg.AllowedOrigins, cfg.HSTSEnabled))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(RateLimitMiddleware(store, cfg.RateLimitMax))

	api := e.Group("/api")
	signupHandler.RegisterRoutes(api)
	systemHandler.RegisterRoutes(api)

	return e
}
