package employee

import (
	"errors"
	"strings"

	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_employees_client_email" {
				return employeeerrors.ErrEmployeeAlreadyExists
			}
		case "22P02":
			return employeeerrors.ErrInvalidEmployeeID
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_client_email") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
