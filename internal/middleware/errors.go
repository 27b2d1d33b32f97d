package middleware

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	ErrInvalidToken = apperror.New("INVALID_TOKEN", "Invalid token", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New("TOKEN_EXPIRED", "Token has expired", http.StatusUnauthorized)

	ErrRequestInFlight = apperror.New(
		"PROCESSING",
		"A request with this Idempotency-Key is still being processed",
		http.StatusConflict,
	)

	ErrClientNotOwned = apperror.New(apperror.CodeNotFound, "Client not found", http.StatusNotFound)
)
