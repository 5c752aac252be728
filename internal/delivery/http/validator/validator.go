// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound requests.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	validate "github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance for echo.
type Validator struct {
	validate *validate.Validate
}

// New builds the echo request validator.
func New() *Validator {
	return &Validator{validate: validate.New()}
}

// Validate checks the struct tags on a bound request and surfaces failures
// as the application's validation error so the error handler maps them to 400.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
