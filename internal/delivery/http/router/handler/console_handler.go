package handler

import (
	"log/slog"
	"net/http"

	"headend/internal/delivery/http/response"
	"headend/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ConsoleHandler handles the live console state endpoints.
type ConsoleHandler struct {
	consoleUsecase usecase.ConsoleUsecase
	logger         *slog.Logger
}

// ConsoleHandlerParams defines the dependencies for ConsoleHandler.
type ConsoleHandlerParams struct {
	fx.In

	ConsoleUsecase usecase.ConsoleUsecase
	Logger         *slog.Logger
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(params ConsoleHandlerParams) *ConsoleHandler {
	return &ConsoleHandler{
		consoleUsecase: params.ConsoleUsecase,
		logger:         params.Logger,
	}
}

// State returns the latest snapshot of all console collections.
// GET /console/state
func (h *ConsoleHandler) State(c echo.Context) error {
	state, err := h.consoleUsecase.State(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Dashboard returns summary statistics for the operator landing view.
// GET /console/dashboard
func (h *ConsoleHandler) Dashboard(c echo.Context) error {
	stats, err := h.consoleUsecase.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}
