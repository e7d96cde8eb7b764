package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Error message formats shared between the validator translation and
// the tests that assert on it.
const (
	ErrRequired = "is required"
	ErrMinItems = "must contain at least %s item(s)"
	ErrMinValue = "must be %s or greater"
)

func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// ValidationMessage converts validator errors into readable messages.
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		if err.Kind().String() == "slice" {
			return fmt.Sprintf(ErrMinItems, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	default:
		return "is invalid"
	}
}
