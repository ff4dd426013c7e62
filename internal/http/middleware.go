package http

import (
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"waitlist/backend/internal/metrics"
	"waitlist/backend/internal/ratelimit"
	"waitlist/backend/pkg/logger"
)

// rateLimitedResponse is the JSON body of a 429 rejection.
type rateLimitedResponse struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

const rateLimitedMessage = "Too many requests, please try again later"

// RateLimitMiddleware enforces per-IP admission control. Every response
// carries X-RateLimit-Limit/-Remaining/-Reset; rejected requests get a 429
// with Retry-After. A store failure admits the request: losing rate
// limiting is preferable to refusing signups.
func RateLimitMiddleware(store ratelimit.Store, limit int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := ratelimit.ClientIP(c.Request())
			dec, err := store.Check(c.Request().Context(), key)
			if err != nil {
				logger.Warn("rate limit check failed, admitting request", "key", key, "error", err)
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(dec.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(dec.Reset, 10))

			if !dec.Allowed {
				h.Set("Retry-After", strconv.Itoa(dec.RetryAfter))
				return c.JSON(nethttp.StatusTooManyRequests, rateLimitedResponse{
					Success:    false,
					StatusCode: nethttp.StatusTooManyRequests,
					Error:      rateLimitedMessage,
					RetryAfter: dec.RetryAfter,
				})
			}
			return next(c)
		}
	}
}

// SecurityHeadersMiddleware sets the response headers every route carries.
// The CSP frame-ancestors list is built once from the origins that pass
// validation; X-Frame-Options is deliberately absent so the signup form can
// be embedded in an iframe.
func SecurityHeadersMiddleware(allowedOrigins []string, hsts bool) echo.MiddlewareFunc {
	ancestors := validOrigins(allowedOrigins)
	if len(ancestors) == 0 {
		ancestors = []string{"'none'"}
	}
	csp := "frame-ancestors " + strings.Join(ancestors, " ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Content-Security-Policy", csp)
			if hsts {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			return next(c)
		}
	}
}

// RequestLoggerMiddleware logs one line per request and records HTTP
// metrics. The route template (not the raw path) is used as the metrics
// label to keep cardinality bounded.
func RequestLoggerMiddleware(rec metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			duration := time.Since(start)

			route := c.Path()
			if route == "" {
				route = req.URL.Path
			}
			rec.ObserveHTTPRequest(req.Method, route, status, duration)

			switch {
			case status >= 500:
				logger.Error("request", "method", req.Method, "path", req.URL.Path, "status", status, "duration", duration)
			case status >= 400:
				logger.Warn("request", "method", req.Method, "path", req.URL.Path, "status", status, "duration", duration)
			default:
				logger.Info("request", "method", req.Method, "path", req.URL.Path, "status", status, "duration", duration)
			}
			return nil
		}
	}
}
