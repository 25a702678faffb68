package handler

import (
	"log/slog"
	"net/http"

	"headend/internal/delivery/http/response"
	"headend/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriberHandler handles subscriber account endpoints.
type SubscriberHandler struct {
	subscriberUsecase usecase.SubscriberUsecase
	logger            *slog.Logger
}

// SubscriberHandlerParams defines the dependencies for SubscriberHandler.
type SubscriberHandlerParams struct {
	fx.In

	SubscriberUsecase usecase.SubscriberUsecase
	Logger            *slog.Logger
}

// NewSubscriberHandler creates a new subscriber handler
func NewSubscriberHandler(params SubscriberHandlerParams) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberUsecase: params.SubscriberUsecase,
		logger:            params.Logger,
	}
}

// RechargeRequest carries the plan to apply to a subscriber.
type RechargeRequest struct {
	PackageID string `json:"packageId" validate:"required"`
}

// ListSubscribers returns all subscriber accounts.
// GET /subscribers
func (h *SubscriberHandler) ListSubscribers(c echo.Context) error {
	subscribers, err := h.subscriberUsecase.ListSubscribers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscribers)
}

// ProvisionSubscriber creates a subscriber account from operator input.
// POST /subscribers
func (h *SubscriberHandler) ProvisionSubscriber(c echo.Context) error {
	var req usecase.SubscriberInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscriber, err := h.subscriberUsecase.Provision(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscriber)
}

// RechargeSubscriber applies a package to a subscriber account.
// POST /subscribers/:id/recharge
func (h *SubscriberHandler) RechargeSubscriber(c echo.Context) error {
	subscriberID := c.Param("id")

	var req RechargeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.subscriberUsecase.Recharge(c.Request().Context(), subscriberID, req.PackageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// DeleteSubscriber removes a subscriber account.
// DELETE /subscribers/:id
func (h *SubscriberHandler) DeleteSubscriber(c echo.Context) error {
	subscriberID := c.Param("id")

	if err := h.subscriberUsecase.Delete(c.Request().Context(), subscriberID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
