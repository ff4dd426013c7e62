package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"waitlist/backend/internal/model"
	"waitlist/backend/internal/ratelimit"
	"waitlist/backend/internal/service"
)

type SignupHandler struct {
	service  service.SignupService
	extended bool
	bulk     bool
}

type signupRequest struct {
	Email          string            `json:"email"`
	SheetTab       string            `json:"sheetTab"`
	Metadata       map[string]string `json:"metadata"`
	TurnstileToken string            `json:"turnstileToken"`
}

type extendedSignupRequest struct {
	signupRequest
	Name   string   `json:"name"`
	Source string   `json:"source"`
	Tags   []string `json:"tags"`
}

type bulkSignupItem struct {
	Email    string            `json:"email"`
	SheetTab string            `json:"sheetTab"`
	Metadata map[string]string `json:"metadata"`
}

type bulkSignupRequest struct {
	Signups []bulkSignupItem `json:"signups"`
}

type signupResponse struct {
	Email     string `json:"email"`
	SheetTab  string `json:"sheetTab"`
	Timestamp string `json:"timestamp"`
}

type bulkResponse struct {
	Success    int      `json:"success"`
	Failed     int      `json:"failed"`
	Duplicates int      `json:"duplicates"`
	Errors     []string `json:"errors"`
}

type statsResponse struct {
	TotalSignups int64    `json:"totalSignups"`
	SheetTabs    []string `json:"sheetTabs"`
}

// NewSignupHandler creates the signup surface. The extended and bulk flags
// decide whether those routes are registered at all.
func NewSignupHandler(service service.SignupService, extended, bulk bool) *SignupHandler {
	return &SignupHandler{service: service, extended: extended, bulk: bulk}
}

func (h *SignupHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/signup", h.Submit)
	if h.extended {
		g.POST("/signup/extended", h.SubmitExtended)
	}
	if h.bulk {
		g.POST("/signup/bulk", h.SubmitBulk)
	}
	g.GET("/stats", h.Stats)
}

func (h *SignupHandler) Submit(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, "request body must be valid JSON")
	}
	rec, err := h.service.Submit(c.Request().Context(), service.SignupInput{
		Email:          req.Email,
		Tab:            req.SheetTab,
		Metadata:       req.Metadata,
		TurnstileToken: req.TurnstileToken,
		RemoteIP:       ratelimit.ClientIP(c.Request()),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return successResponse(c, "Signup recorded", toSignupResponse(rec))
}

func (h *SignupHandler) SubmitExtended(c echo.Context) error {
	var req extendedSignupRequest
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, "request body must be valid JSON")
	}
	rec, err := h.service.Submit(c.Request().Context(), service.SignupInput{
		Email:          req.Email,
		Tab:            req.SheetTab,
		Name:           req.Name,
		Source:         req.Source,
		Tags:           req.Tags,
		Metadata:       req.Metadata,
		TurnstileToken: req.TurnstileToken,
		RemoteIP:       ratelimit.ClientIP(c.Request()),
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return successResponse(c, "Signup recorded", toSignupResponse(rec))
}

func (h *SignupHandler) SubmitBulk(c echo.Context) error {
	var req bulkSignupRequest
	if err := c.Bind(&req); err != nil {
		return validationFailed(c, "request body must be valid JSON")
	}

	items := make([]service.SignupInput, 0, len(req.Signups))
	for _, item := range req.Signups {
		items = append(items, service.SignupInput{
			Email:    item.Email,
			Tab:      item.SheetTab,
			Metadata: item.Metadata,
		})
	}

	result, err := h.service.SubmitBulk(c.Request().Context(), items)
	if err != nil {
		return writeServiceError(c, err)
	}
	return successResponse(c, "Bulk signup processed", toBulkResponse(result))
}

func (h *SignupHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	tabs := stats.SheetTabs
	if tabs == nil {
		tabs = []string{}
	}
	return successResponse(c, "", statsResponse{TotalSignups: stats.TotalSignups, SheetTabs: tabs})
}

func toSignupResponse(rec model.SignupRecord) signupResponse {
	return signupResponse{
		Email:     rec.Email,
		SheetTab:  rec.Tab,
		Timestamp: rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBulkResponse(result model.BulkResult) bulkResponse {
	errs := result.Errors
	if errs == nil {
		errs = []string{}
	}
	return bulkResponse{
		Success:    result.Success,
		Failed:     result.Failed,
		Duplicates: result.Duplicates,
		Errors:     errs,
	}
}
