package apperror

import "errors"

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP resolves err to the response the API should emit.
// Anything that is not an AppError is reported as an internal error.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
