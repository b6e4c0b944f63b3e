// Package validator holds the process-wide validator instance used to
// range-check parsed player commands.
package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	return validate
}
