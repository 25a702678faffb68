package handler

import (
	"log/slog"
	"net/http"

	"headend/internal/delivery/http/response"
	"headend/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandler handles category, bouquet and channel endpoints.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	logger         *slog.Logger
}

// CatalogHandlerParams defines the dependencies for CatalogHandler.
type CatalogHandlerParams struct {
	fx.In

	CatalogUsecase usecase.CatalogUsecase
	Logger         *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: params.CatalogUsecase,
		logger:         params.Logger,
	}
}

// NameRequest carries a single name for creating categories and bouquets.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListCategories returns all categories with channel counts.
// GET /categories
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUsecase.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// AddCategory creates a channel grouping.
// POST /categories
func (h *CatalogHandler) AddCategory(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.catalogUsecase.AddCategory(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// DeleteCategory removes a category.
// DELETE /categories/:id
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	if err := h.catalogUsecase.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// ListBouquets returns all bouquets with channel counts.
// GET /bouquets
func (h *CatalogHandler) ListBouquets(c echo.Context) error {
	bouquets, err := h.catalogUsecase.ListBouquets(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bouquets)
}

// AddBouquet creates a channel bundle.
// POST /bouquets
func (h *CatalogHandler) AddBouquet(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	bouquet, err := h.catalogUsecase.AddBouquet(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bouquet)
}

// DeleteBouquet removes a bouquet.
// DELETE /bouquets/:id
func (h *CatalogHandler) DeleteBouquet(c echo.Context) error {
	if err := h.catalogUsecase.DeleteBouquet(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}

// ListChannels returns all channels.
// GET /channels
func (h *CatalogHandler) ListChannels(c echo.Context) error {
	channels, err := h.catalogUsecase.ListChannels(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, channels)
}

// AddChannel creates a channel with its playback sources.
// POST /channels
func (h *CatalogHandler) AddChannel(c echo.Context) error {
	var req usecase.ChannelInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	channel, err := h.catalogUsecase.AddChannel(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, channel)
}

// UpdateChannel replaces a channel's record under the same id.
// PUT /channels/:id
func (h *CatalogHandler) UpdateChannel(c echo.Context) error {
	channelID := c.Param("id")

	var req usecase.ChannelInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	channel, err := h.catalogUsecase.UpdateChannel(c.Request().Context(), channelID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, channel)
}

// DeleteChannel removes a channel.
// DELETE /channels/:id
func (h *CatalogHandler) DeleteChannel(c echo.Context) error {
	if err := h.catalogUsecase.DeleteChannel(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
