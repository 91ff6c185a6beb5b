// Package validation wraps a shared go-playground validator instance for
// DTO struct validation.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pymeledger/pymeledger/internal/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags. Failures are wrapped so
// that errors.Is(err, apperrors.ErrValidation) holds.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
