package usecase

import (
	"errors"
	"fmt"

	"hotel-booking/pkg/utils"
)

// Handlers map these to status codes with errors.Is. Anything else is a
// storage failure and surfaces as 500.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

func validationError(errs map[string]string) error {
	return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
}
