package handler

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"waitlist/backend/internal/config"
)

// SystemHandler serves the operational endpoints: health, public config and
// the metrics exposition.
type SystemHandler struct {
	cfg            *config.Config
	metricsHandler nethttp.Handler // nil when metrics are disabled
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// configResponse is the public subset of configuration the embedding form
// needs. The Turnstile secret never appears here.
type configResponse struct {
	TurnstileEnabled bool   `json:"turnstileEnabled"`
	TurnstileSiteKey string `json:"turnstileSiteKey,omitempty"`
	DefaultSheetTab  string `json:"defaultSheetTab"`
	ExtendedEnabled  bool   `json:"extendedEnabled"`
	BulkEnabled      bool   `json:"bulkEnabled"`
}

func NewSystemHandler(cfg *config.Config, metricsHandler nethttp.Handler) *SystemHandler {
	return &SystemHandler{cfg: cfg, metricsHandler: metricsHandler}
}

func (h *SystemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Health)
	g.GET("/config", h.Config)
	if h.metricsHandler != nil {
		g.GET("/metrics", echo.WrapHandler(h.metricsHandler))
	}
}

func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(nethttp.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SystemHandler) Config(c echo.Context) error {
	resp := configResponse{
		TurnstileEnabled: h.cfg.TurnstileEnabled,
		DefaultSheetTab:  h.cfg.DefaultTab,
		ExtendedEnabled:  h.cfg.ExtendedEnabled,
		BulkEnabled:      h.cfg.BulkEnabled,
	}
	if h.cfg.TurnstileEnabled {
		resp.TurnstileSiteKey = h.cfg.TurnstileSiteKey
	}
	return c.JSON(nethttp.StatusOK, resp)
}
