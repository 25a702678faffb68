// Package handler implements the console's HTTP endpoint handlers.
package handler

import (
	"log/slog"
	"net/http"

	"headend/internal/delivery/http/response"
	"headend/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandler handles operator authentication endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	logger      *slog.Logger
}

// AuthHandlerParams defines the dependencies for AuthHandler.
type AuthHandlerParams struct {
	fx.In

	AuthUsecase usecase.AuthUsecase
	Logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUsecase: params.AuthUsecase,
		logger:      params.Logger,
	}
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login verifies operator credentials and issues an access token.
// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.authUsecase.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{Token: token})
}
