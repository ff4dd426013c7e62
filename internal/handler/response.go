package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"waitlist/backend/internal/service"
)

// apiResponse is the envelope every JSON endpoint answers with.
type apiResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
	Data    any      `json:"data,omitempty"`
}

// Error message strings are fixed per error kind so responses never leak
// internal details.
const (
	msgValidationFailed = "Validation failed"
	msgBotCheckFailed   = "Turnstile verification failed"
	msgDuplicate        = "Email already registered"
	msgInternal         = "Internal server error"
)

func successResponse(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, apiResponse{Success: true, Message: message, Data: data})
}

func validationFailed(c echo.Context, details ...string) error {
	return c.JSON(http.StatusBadRequest, apiResponse{Success: false, Error: msgValidationFailed, Details: details})
}

// writeServiceError maps the pipeline's error taxonomy onto HTTP statuses.
func writeServiceError(c echo.Context, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return validationFailed(c, verr.Details...)
	case errors.Is(err, service.ErrBotCheck):
		return c.JSON(http.StatusBadRequest, apiResponse{Success: false, Error: msgBotCheckFailed})
	case errors.Is(err, service.ErrDuplicate):
		return c.JSON(http.StatusConflict, apiResponse{Success: false, Error: msgDuplicate})
	default:
		return c.JSON(http.StatusInternalServerError, apiResponse{Success: false, Error: msgInternal})
	}
}
