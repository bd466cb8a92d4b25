package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the struct's validate tags and collapses every
// violation into a single error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}

	parts := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		msg := fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag())
		if fe.Param() != "" {
			msg += fmt.Sprintf(" (param %s)", fe.Param())
		}
		parts = append(parts, msg)
	}
	return fmt.Errorf("invalid config: %s", strings.Join(parts, "; "))
}
