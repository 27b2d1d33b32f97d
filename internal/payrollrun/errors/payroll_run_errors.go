package payrollrunerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayrollRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)
	ErrInvalidPayrollRunID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll run ID",
		http.StatusBadRequest,
	)
	ErrEntryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee is not part of this payroll run",
		http.StatusNotFound,
	)
	ErrNoEmployeesSelected = apperror.Validation(apperror.FieldError{
		Field:   "employee_ids",
		Message: "Please select at least one employee for this payroll run",
	})
	ErrEmployeeNotInClient = apperror.Validation(apperror.FieldError{
		Field:   "employee_ids",
		Message: "contains employees that do not belong to this client",
	})
	ErrEmployeeAlreadyInRun = apperror.New(
		apperror.CodeValidationFailed,
		"Employee is already included in this payroll run",
		http.StatusBadRequest,
	).WithDetails([]apperror.FieldError{{
		Field:   "employee_id",
		Message: "is already included in this payroll run",
	}})
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown payroll run status",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Payroll run status transition is not allowed",
		http.StatusConflict,
	)
	ErrRunNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"Payroll run can only be changed while in draft or review",
		http.StatusConflict,
	)
	ErrRunProcessed = apperror.New(
		apperror.CodeInvalidState,
		"Processed payroll runs cannot be deleted, void the run instead",
		http.StatusConflict,
	)
	ErrNotReadyForProcessing = apperror.New(
		apperror.CodeValidationFailed,
		"Payroll run is not ready for processing",
		http.StatusUnprocessableEntity,
	)
	ErrActorRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Status changes require an authenticated actor",
		http.StatusUnauthorized,
	)
)
