package payrollrun

import (
	"errors"
	"strings"

	payrollrunerrors "go-payroll/internal/payrollrun/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const entryUniqueConstraint = "uq_payroll_entries_employee_run"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollrunerrors.ErrPayrollRunNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == entryUniqueConstraint {
				return payrollrunerrors.ErrEmployeeAlreadyInRun
			}
		case "22P02":
			return payrollrunerrors.ErrInvalidPayrollRunID
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, entryUniqueConstraint) {
		return payrollrunerrors.ErrEmployeeAlreadyInRun
	}

	return err
}
