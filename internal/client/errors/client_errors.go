package clienterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client ID",
		http.StatusBadRequest,
	)
)
