package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"headend/config"
	"headend/internal/delivery/http/validator"
	"headend/internal/infra/auth"
	"headend/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login_Integration(t *testing.T) {
	// Build the real auth stack against a test credential
	hasher := auth.NewBcryptHasher()
	passwordHash, err := hasher.Hash("console-secret")
	require.NoError(t, err)

	testConfig := &config.Config{
		Operator: &config.OperatorConfig{
			Username:     "admin",
			PasswordHash: passwordHash,
		},
	}
	testConfig.SecretKey.Access = "integration-test-secret"

	tokenService, err := auth.NewJWTService(testConfig)
	require.NoError(t, err)

	authUsecase, err := impl.NewAuthService(impl.AuthServiceParams{
		Config:       testConfig,
		TokenService: tokenService,
		Hasher:       hasher,
	})
	require.NoError(t, err)

	handler := &AuthHandler{
		authUsecase: authUsecase,
		logger:      slog.Default(),
	}

	e := echo.New()
	e.Validator = validator.New()

	t.Run("valid credentials return a verifiable token", func(t *testing.T) {
		body := `{"username":"admin","password":"console-secret"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Data.Token)

		claims, err := tokenService.ValidateToken(resp.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		body := `{"username":"admin","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		body := `{"username":"admin"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})
}
