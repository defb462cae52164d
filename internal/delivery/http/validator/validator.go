// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	govalidator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "quill/internal/domain/errors"
)

// echoValidator wraps the validator instance for echo.
type echoValidator struct {
	validate *govalidator.Validate
}

// New creates an echo-compatible validator.
func New() *echoValidator {
	return &echoValidator{validate: govalidator.New()}
}

// Validate checks the struct tags on the bound request payload. Failures
// surface as ErrValidationFailed so the error handler maps them to 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "request validation failed")
	}

	return nil
}
