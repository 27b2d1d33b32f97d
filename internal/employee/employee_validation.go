package employee

import (
	"go-payroll/internal/paycalc"
	"go-payroll/internal/shared/apperror"
)

// Validate reports field errors. Blank optional fields pass.
func (e *Employee) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	add := func(field, msg string) {
		errs = append(errs, apperror.FieldError{Field: field, Message: msg})
	}

	if len([]rune(e.Name)) < 2 {
		add("name", "must be at least 2 characters")
	}
	if _, ok := paycalc.ParseEmploymentType(string(e.EmploymentType)); !ok {
		add("employment_type", "must be W2 or 1099")
	}
	if _, ok := paycalc.ParseFrequency(string(e.PayFrequency)); !ok {
		add("pay_frequency", "must be weekly, biweekly, semimonthly, or monthly")
	}
	if e.Status != StatusActive && e.Status != StatusInactive {
		add("status", "must be active or inactive")
	}
	if _, ok := paycalc.ParseMaritalStatus(string(e.MaritalStatus)); !ok {
		add("marital_status", "must be a valid marital status")
	}
	if e.Salary.Valid && !e.Salary.Decimal.IsPositive() {
		add("salary", "must be greater than $0")
	}
	if e.HourlyRate.Valid && e.HourlyRate.Decimal.IsNegative() {
		add("hourly_rate", "cannot be negative")
	}
	if e.HoursWorked.Valid && e.HoursWorked.Decimal.IsNegative() {
		add("hours_worked", "cannot be negative")
	}
	if e.FederalWithholdingAllowances < 0 {
		add("federal_withholding_allowances", "cannot be negative")
	}
	if e.StateWithholdingAllowances < 0 {
		add("state_withholding_allowances", "cannot be negative")
	}
	if e.FederalAdditionalWithholding.IsNegative() {
		add("federal_additional_withholding", "cannot be negative")
	}
	if e.StateAdditionalWithholding.IsNegative() {
		add("state_additional_withholding", "cannot be negative")
	}
	return errs
}
