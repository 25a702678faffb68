package impl

import (
	"context"
	"testing"

	"headend/config"
	domainerrors "headend/internal/domain/errors"
	mockService "headend/internal/mocks/service"
	"headend/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authFixtures holds all test dependencies for auth tests.
type authFixtures struct {
	service      usecase.AuthUsecase
	tokenService *mockService.MockTokenService
	hasher       *mockService.MockPasswordHasher
}

func createTestAuthService(t *testing.T) authFixtures {
	tokenService := mockService.NewMockTokenService(t)
	hasher := mockService.NewMockPasswordHasher(t)

	cfg := &config.Config{
		Operator: &config.OperatorConfig{
			Username:     "admin",
			PasswordHash: "$2a$10$stored-hash",
		},
	}

	svc, err := NewAuthService(AuthServiceParams{
		Config:       cfg,
		TokenService: tokenService,
		Hasher:       hasher,
	})
	require.NoError(t, err)

	return authFixtures{
		service:      svc,
		tokenService: tokenService,
		hasher:       hasher,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().
		Check("correct-password", "$2a$10$stored-hash").
		Return(true)

	fx.tokenService.EXPECT().
		GenerateToken("admin").
		Return("signed-token", nil)

	token, err := fx.service.Login(context.Background(), &usecase.LoginInfo{
		Username: "admin",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
}

func TestAuthService_Login_WrongUsername(t *testing.T) {
	fx := createTestAuthService(t)

	token, err := fx.service.Login(context.Background(), &usecase.LoginInfo{
		Username: "intruder",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Empty(t, token)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().
		Check("wrong-password", "$2a$10$stored-hash").
		Return(false)

	token, err := fx.service.Login(context.Background(), &usecase.LoginInfo{
		Username: "admin",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Empty(t, token)
}

func TestNewAuthService_MissingOperatorConfig(t *testing.T) {
	tokenService := mockService.NewMockTokenService(t)
	hasher := mockService.NewMockPasswordHasher(t)

	svc, err := NewAuthService(AuthServiceParams{
		Config:       &config.Config{},
		TokenService: tokenService,
		Hasher:       hasher,
	})
	require.Error(t, err)
	assert.Nil(t, svc)
}
