package usecase

import (
	"context"
)

// LoginInfo carries operator credentials for console sign-in.
type LoginInfo struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthUsecase defines operator authentication use cases. The console has a
// single credential pair configured at deploy time.
type AuthUsecase interface {
	// Login verifies the operator credentials and issues an access token.
	Login(ctx context.Context, info *LoginInfo) (string, error)
}
