package middleware

import (
	"strings"

	"headend/internal/delivery/http/response"
	"headend/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// KeyOperator is the echo context key for the authenticated operator name.
	KeyOperator = "operator"

	bearerPrefix = "Bearer "
)

// AuthMiddleware guards the console API with operator access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: tokenSvc,
	}
}

// Authenticate validates the bearer token and stores the operator name in
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is required")
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Authorization header must use the Bearer scheme")
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Bearer token is empty")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(KeyOperator, claims.Username)

		return next(c)
	}
}
