package impl

import (
	"context"

	"headend/config"
	domainerrors "headend/internal/domain/errors"
	"headend/internal/domain/service"
	"headend/internal/errors"
	"headend/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	config       *config.Config
	tokenService service.TokenService
	hasher       service.PasswordHasher
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config       *config.Config
	TokenService service.TokenService
	Hasher       service.PasswordHasher
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	if params.Config.Operator == nil {
		return nil, errors.New("operator credentials must be configured")
	}

	return &authService{
		config:       params.Config,
		tokenService: params.TokenService,
		hasher:       params.Hasher,
	}, nil
}

// Login verifies the operator credentials and issues an access token
func (s *authService) Login(_ context.Context, info *usecase.LoginInfo) (string, error) {
	operator := s.config.Operator
	if info.Username != operator.Username {
		return "", domainerrors.ErrInvalidCredentials
	}

	if !s.hasher.Check(info.Password, operator.PasswordHash) {
		return "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(info.Username)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return token, nil
}
