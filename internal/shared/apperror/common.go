package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		CodeValidationFailed,
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeTooManyRequests,
		"Too many requests",
		http.StatusTooManyRequests,
	)
)

// Validation wraps a list of field errors into ErrValidation.
func Validation(fields ...FieldError) *AppError {
	return ErrValidation.WithDetails(fields)
}

func InvalidField(field string) *AppError {
	return Validation(FieldError{Field: field, Message: fmt.Sprintf("%s is invalid", field)})
}
