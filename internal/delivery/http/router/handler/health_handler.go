package handler

import (
	"net/http"

	"headend/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports process liveness.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check returns a static ok payload.
// GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
