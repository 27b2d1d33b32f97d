package employee

import (
	"go-payroll/internal/paycalc"

	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name                         string              `json:"name" binding:"required,min=2"`
	Title                        string              `json:"title"`
	Department                   string              `json:"department"`
	Email                        string              `json:"email" binding:"omitempty,email"`
	Phone                        string              `json:"phone"`
	Address                      string              `json:"address"`
	State                        string              `json:"state" binding:"omitempty,len=2,alpha"`
	EmploymentType               string              `json:"employment_type" binding:"omitempty,oneof=W2 1099"`
	PayFrequency                 string              `json:"pay_frequency" binding:"omitempty,oneof=weekly biweekly semimonthly monthly"`
	Salary                       decimal.NullDecimal `json:"salary"`
	HourlyRate                   decimal.NullDecimal `json:"hourly_rate"`
	HoursWorked                  decimal.NullDecimal `json:"hours_worked"`
	HireDate                     string              `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	MaritalStatus                string              `json:"marital_status" binding:"omitempty,oneof=single married_jointly married_separately head_of_household"`
	FederalWithholdingAllowances int                 `json:"federal_withholding_allowances" binding:"gte=0"`
	FederalAdditionalWithholding decimal.NullDecimal `json:"federal_additional_withholding"`
	StateWithholdingAllowances   int                 `json:"state_withholding_allowances" binding:"gte=0"`
	StateAdditionalWithholding   decimal.NullDecimal `json:"state_additional_withholding"`
}

type GetEmployeesFilterRequest struct {
	Status         string `form:"status" binding:"omitempty,oneof=active inactive"`
	EmploymentType string `form:"employment_type" binding:"omitempty,oneof=W2 1099"`
	PayFrequency   string `form:"pay_frequency" binding:"omitempty,oneof=weekly biweekly semimonthly monthly"`
	Q              string `form:"q"`
}

type EmployeeResponse struct {
	ID                           string              `json:"id"`
	ClientID                     string              `json:"client_id"`
	Name                         string              `json:"name"`
	DisplayName                  string              `json:"display_name"`
	Title                        string              `json:"title,omitempty"`
	Department                   string              `json:"department,omitempty"`
	Email                        string              `json:"email,omitempty"`
	Phone                        string              `json:"phone,omitempty"`
	Address                      string              `json:"address,omitempty"`
	State                        string              `json:"state,omitempty"`
	EmploymentType               string              `json:"employment_type"`
	EmploymentTypeDisplay        string              `json:"employment_type_display"`
	PayFrequency                 string              `json:"pay_frequency"`
	PayFrequencyDisplay          string              `json:"pay_frequency_display"`
	Status                       string              `json:"status"`
	StatusDisplay                string              `json:"status_display"`
	Salary                       decimal.NullDecimal `json:"salary"`
	HourlyRate                   decimal.NullDecimal `json:"hourly_rate"`
	HoursWorked                  decimal.NullDecimal `json:"hours_worked"`
	CalculatedHourlyRate         decimal.Decimal     `json:"calculated_hourly_rate"`
	GrossPayPerPeriod            decimal.Decimal     `json:"gross_pay_per_period"`
	HireDate                     string              `json:"hire_date,omitempty"`
	MaritalStatus                string              `json:"marital_status,omitempty"`
	MaritalStatusDisplay         string              `json:"marital_status_display"`
	FederalWithholdingAllowances int                 `json:"federal_withholding_allowances"`
	FederalAdditionalWithholding decimal.Decimal     `json:"federal_additional_withholding"`
	StateWithholdingAllowances   int                 `json:"state_withholding_allowances"`
	StateAdditionalWithholding   decimal.Decimal     `json:"state_additional_withholding"`
	MissingPayrollFields         []string            `json:"missing_payroll_fields,omitempty"`
}

type EmployeeOptionResponse struct {
	ID             string `json:"id"`
	DisplayName    string `json:"display_name"`
	EmploymentType string `json:"employment_type"`
	PayFrequency   string `json:"pay_frequency"`
}

type PayEstimateResponse struct {
	EmployeeID   string         `json:"employee_id"`
	EmployeeName string         `json:"employee_name"`
	PayFrequency string         `json:"pay_frequency"`
	State        string         `json:"state,omitempty"`
	Calculation  paycalc.Result `json:"calculation"`
}
