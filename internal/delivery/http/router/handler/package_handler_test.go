package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"headend/internal/delivery/http/validator"
	mockRepo "headend/internal/mocks/repository"
	"headend/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPackageHandler_AddPackage_RejectsNonPositivePrice(t *testing.T) {
	packageRepo := mockRepo.NewMockPackageRepository(t)

	packageUsecase := impl.NewPackageService(impl.PackageServiceParams{
		PackageRepo: packageRepo,
	})

	handler := &PackageHandler{
		packageUsecase: packageUsecase,
		logger:         slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()

	tests := []struct {
		name string
		body string
	}{
		{name: "zero price", body: `{"name":"Gold Monthly","price":0,"durationDays":30}`},
		{name: "negative price", body: `{"name":"Gold Monthly","price":-49,"durationDays":30}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/packages", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.NoError(t, handler.AddPackage(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
		})
	}

	packageRepo.AssertNotCalled(t, "CreatePackage")
}
