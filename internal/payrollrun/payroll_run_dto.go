package payrollrun

import "github.com/shopspring/decimal"

type CreatePayrollRunRequest struct {
	Name           string   `json:"name" binding:"omitempty,max=255"`
	Description    string   `json:"description"`
	Notes          string   `json:"notes"`
	PayFrequency   string   `json:"pay_frequency" binding:"omitempty,oneof=weekly biweekly semimonthly monthly"`
	RunDate        string   `json:"run_date" binding:"omitempty,datetime=2006-01-02"`
	PayPeriodStart string   `json:"pay_period_start" binding:"omitempty,datetime=2006-01-02"`
	PayPeriodEnd   string   `json:"pay_period_end" binding:"omitempty,datetime=2006-01-02"`
	EmployeeIDs    []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
}

// UpdatePayrollRunRequest only changes the fields that are present.
type UpdatePayrollRunRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=255"`
	Description    *string `json:"description"`
	Notes          *string `json:"notes"`
	PayFrequency   *string `json:"pay_frequency" binding:"omitempty,oneof=weekly biweekly semimonthly monthly"`
	RunDate        *string `json:"run_date" binding:"omitempty,datetime=2006-01-02"`
	PayPeriodStart *string `json:"pay_period_start" binding:"omitempty,datetime=2006-01-02"`
	PayPeriodEnd   *string `json:"pay_period_end" binding:"omitempty,datetime=2006-01-02"`
}

type GetPayrollRunsFilterRequest struct {
	Status       string `form:"status" binding:"omitempty,oneof=draft review approved processed voided"`
	PayFrequency string `form:"pay_frequency" binding:"omitempty,oneof=weekly biweekly semimonthly monthly"`
	From         string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To           string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Q            string `form:"q"`
}

type AddEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=draft review approved processed voided"`
}

type EntryResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name,omitempty"`
	EmploymentType string          `json:"employment_type,omitempty"`
	HoursWorked    decimal.Decimal `json:"hours_worked"`
	PayRate        decimal.Decimal `json:"pay_rate"`
	GrossPay       decimal.Decimal `json:"gross_pay"`
	NetPay         decimal.Decimal `json:"net_pay"`
	Deductions     decimal.Decimal `json:"deductions"`
	Breakdown      Breakdown       `json:"breakdown"`
}

type PayrollRunResponse struct {
	ID                 string          `json:"id"`
	ClientID           string          `json:"client_id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	Status             string          `json:"status"`
	StatusDisplay      string          `json:"status_display"`
	AllowedTransitions []string        `json:"allowed_transitions"`
	Editable           bool            `json:"editable"`
	PayFrequency       string          `json:"pay_frequency"`
	RunDate            string          `json:"run_date,omitempty"`
	PayPeriodStart     string          `json:"pay_period_start,omitempty"`
	PayPeriodEnd       string          `json:"pay_period_end,omitempty"`
	StatusChangedBy    string          `json:"status_changed_by,omitempty"`
	StatusChangedAt    string          `json:"status_changed_at,omitempty"`
	Totals             Totals          `json:"totals"`
	Entries            []EntryResponse `json:"entries,omitempty"`
}

type TotalsResponse struct {
	PayrollRunID string `json:"payroll_run_id"`
	Totals
}

type ReadinessResponse struct {
	PayrollRunID      string   `json:"payroll_run_id"`
	Ready             bool     `json:"ready_for_processing"`
	ProcessingErrors  []string `json:"processing_errors"`
	UnpublishedEvents int      `json:"unpublished_events"`
}
