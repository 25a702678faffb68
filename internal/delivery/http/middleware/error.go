package middleware

import (
	"log/slog"

	deliverycontext "headend/internal/delivery/context"
	"headend/internal/delivery/http/response"
	domainerrors "headend/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware converts errors escaping the handlers into the unified
// error envelope. It is installed as echo's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is the custom HTTP error handler for echo
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own HTTP status and business code
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if respErr := response.HandleAppError(c, err); respErr != nil {
			m.logger.Error("failed to write error response",
				slog.String("request_id", deliverycontext.GetRequestID(c)),
				slog.Any("error", respErr),
			)
		}

		return
	}

	// Echo framework errors (404 route not found, 405, oversized body, ...)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = "Request failed"
		}

		if respErr := response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil); respErr != nil {
			m.logger.Error("failed to write error response",
				slog.String("request_id", deliverycontext.GetRequestID(c)),
				slog.Any("error", respErr),
			)
		}

		return
	}

	// Anything else is unexpected. Log the details, hide them from the client.
	m.logger.Error("unhandled error",
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	if respErr := response.InternalServerError(c, "INTERNAL_ERROR",
		"Internal server error, please try again later"); respErr != nil {
		m.logger.Error("failed to write error response",
			slog.String("request_id", deliverycontext.GetRequestID(c)),
			slog.Any("error", respErr),
		)
	}
}
