package handler

import (
	"log/slog"
	"net/http"

	"headend/internal/delivery/http/response"
	"headend/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandler handles pending device request endpoints.
type RequestHandler struct {
	provisioningUsecase usecase.ProvisioningUsecase
	logger              *slog.Logger
}

// RequestHandlerParams defines the dependencies for RequestHandler.
type RequestHandlerParams struct {
	fx.In

	ProvisioningUsecase usecase.ProvisioningUsecase
	Logger              *slog.Logger
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		provisioningUsecase: params.ProvisioningUsecase,
		logger:              params.Logger,
	}
}

// SwapRequest carries the target subscriber for a hardware swap.
type SwapRequest struct {
	SubscriberID string `json:"subscriberId" validate:"required"`
}

// ListRequests returns all pending device requests.
// GET /requests
func (h *RequestHandler) ListRequests(c echo.Context) error {
	requests, err := h.provisioningUsecase.ListRequests(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// ApproveRequest turns a pending request into a new subscriber account.
// POST /requests/:id/approve
func (h *RequestHandler) ApproveRequest(c echo.Context) error {
	requestID := c.Param("id")

	var req usecase.ApprovalInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscriber, err := h.provisioningUsecase.Approve(c.Request().Context(), requestID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// The request vanished between listing and approving. Nothing was
	// created, which is exactly what the operator sees on refresh.
	if subscriber == nil {
		return response.Success(c, http.StatusOK, nil)
	}

	return response.Success(c, http.StatusCreated, subscriber)
}

// SwapRequest moves the request's hardware identifier onto an existing
// subscriber.
// POST /requests/:id/swap
func (h *RequestHandler) SwapRequest(c echo.Context) error {
	requestID := c.Param("id")

	var req SwapRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.provisioningUsecase.Swap(c.Request().Context(), requestID, req.SubscriberID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// DismissRequest discards a pending request.
// DELETE /requests/:id
func (h *RequestHandler) DismissRequest(c echo.Context) error {
	requestID := c.Param("id")

	if err := h.provisioningUsecase.Dismiss(c.Request().Context(), requestID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// PairingQR renders the request's pairing code as a PNG image.
// GET /requests/:id/qr
func (h *RequestHandler) PairingQR(c echo.Context) error {
	requestID := c.Param("id")

	png, err := h.provisioningUsecase.PairingQR(c.Request().Context(), requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
