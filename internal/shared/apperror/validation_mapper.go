package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// pay_period_start -> Pay Period Start
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns binding errors into a field-level validation error.
// Field names come from json tags, see Init.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		fields := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			humanReadableField := formatFieldName(e.Field())

			var msg string
			switch e.Tag() {
			case "required":
				msg = humanReadableField + " is required"
			case "oneof":
				msg = humanReadableField + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "gte", "gt":
				msg = humanReadableField + " is out of range"
			default:
				msg = humanReadableField + " is invalid"
			}
			fields = append(fields, FieldError{Field: e.Field(), Message: msg})
		}
		return Validation(fields...)
	}

	return ErrInvalidInput.WithCause(err)
}
