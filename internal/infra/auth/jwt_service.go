// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"headend/config"
	"headend/internal/domain/service"
	"headend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenTTL = 12 * time.Hour // one operator shift

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{secret: cfg.SecretKey.Access}, nil
}

// GenerateToken creates a new access token for the given operator.
func (s *jwtService) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	username, ok := mapClaims["sub"].(string)
	if !ok || username == "" {
		return nil, errors.New("subject missing from token")
	}

	return &service.Claims{Username: username}, nil
}
