package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Plan     string `json:"plan" validate:"omitempty,oneof=basic pro"`
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	errs := ValidateStruct(signup{Email: "nope", Password: "123", Plan: "gold"})

	assert.Equal(t, "Invalid email format", errs["email"])
	assert.Equal(t, "Minimum is 6", errs["password"])
	assert.Equal(t, "Must be one of: basic, pro", errs["plan"])
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.Empty(t, ValidateStruct(signup{Email: "a@b.co", Password: "123456"}))
}

func TestFormatValidationErrors_Sorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"password": "Minimum is 6",
		"email":    "This field is required",
	})
	assert.Equal(t, "email: This field is required; password: Minimum is 6", got)
}
