package handler

import (
	"log/slog"
	"net/http"

	"headend/internal/delivery/http/response"
	"headend/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PackageHandler handles commercial plan endpoints.
type PackageHandler struct {
	packageUsecase usecase.PackageUsecase
	logger         *slog.Logger
}

// PackageHandlerParams defines the dependencies for PackageHandler.
type PackageHandlerParams struct {
	fx.In

	PackageUsecase usecase.PackageUsecase
	Logger         *slog.Logger
}

// NewPackageHandler creates a new package handler
func NewPackageHandler(params PackageHandlerParams) *PackageHandler {
	return &PackageHandler{
		packageUsecase: params.PackageUsecase,
		logger:         params.Logger,
	}
}

// ListPackages returns all plans.
// GET /packages
func (h *PackageHandler) ListPackages(c echo.Context) error {
	packages, err := h.packageUsecase.ListPackages(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, packages)
}

// AddPackage creates a plan.
// POST /packages
func (h *PackageHandler) AddPackage(c echo.Context) error {
	var req usecase.PackageInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "BINDING_ERROR", "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pkg, err := h.packageUsecase.AddPackage(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pkg)
}

// DeletePackage removes a plan.
// DELETE /packages/:id
func (h *PackageHandler) DeletePackage(c echo.Context) error {
	if err := h.packageUsecase.DeletePackage(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil)
}
