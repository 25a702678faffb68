// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a new echo-compatible validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
