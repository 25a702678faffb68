package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"headend/internal/delivery/http/middleware"
	"headend/internal/delivery/http/validator"
	"headend/internal/domain/repository"
	mockRepo "headend/internal/mocks/repository"
	mockService "headend/internal/mocks/service"
	"headend/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRequestHandler_PairingQR_VanishedRequestAnswers404(t *testing.T) {
	requestRepo := mockRepo.NewMockDeviceRequestRepository(t)
	subscriberRepo := mockRepo.NewMockSubscriberRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.Default()

	provisioningUsecase := impl.NewProvisioningService(impl.ProvisioningServiceParams{
		RequestRepo:    requestRepo,
		SubscriberRepo: subscriberRepo,
		QRCodeService:  qrcodeService,
		Publisher:      publisher,
		Logger:         logger,
	})

	handler := &RequestHandler{
		provisioningUsecase: provisioningUsecase,
		logger:              logger,
	}

	requestRepo.EXPECT().
		FindRequestByID(mock.Anything, "gone").
		Return(nil, repository.ErrRequestNotFound)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/api/v1/requests/:id/qr", handler.PairingQR)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/gone/qr", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQUEST_NOT_FOUND")
	assert.NotContains(t, rec.Body.String(), "INTERNAL_ERROR")
}
