package payrollrun

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-payroll/internal/paycalc"
	payrollrunerrors "go-payroll/internal/payrollrun/errors"
	"go-payroll/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxNameLength = 255

type PayrollRun struct {
	ID              uuid.UUID            `gorm:"type:uuid;primaryKey"`
	ClientID        uuid.UUID            `gorm:"type:uuid;not null;index:idx_payroll_runs_client_status"`
	Name            string               `gorm:"size:255;not null"`
	Description     string               `gorm:"type:text"`
	Notes           string               `gorm:"type:text"`
	Status          Status               `gorm:"size:16;not null;index:idx_payroll_runs_client_status"`
	PayFrequency    paycalc.PayFrequency `gorm:"size:16;not null"`
	RunDate         *time.Time           `gorm:"type:date;index"`
	PayPeriodStart  *time.Time           `gorm:"type:date"`
	PayPeriodEnd    *time.Time           `gorm:"type:date"`
	StatusChangedBy string
	StatusChangedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Entries []PayrollEntry `gorm:"foreignKey:PayrollRunID;constraint:OnDelete:CASCADE"`
}

// NewPayrollRun copies in and fills what the form may leave blank: draft
// status, today's run date, a biweekly frequency, the derived pay period and
// a name. Explicit period bounds are kept as given.
func NewPayrollRun(in PayrollRun, today time.Time) *PayrollRun {
	r := in
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = StatusDraft
	}
	if f, ok := paycalc.ParseFrequency(string(r.PayFrequency)); ok {
		r.PayFrequency = f
	} else if strings.TrimSpace(string(r.PayFrequency)) == "" {
		r.PayFrequency = paycalc.FrequencyBiweekly
	}
	if r.RunDate == nil {
		d := dateOnly(today)
		r.RunDate = &d
	}
	if r.PayPeriodStart == nil || r.PayPeriodEnd == nil {
		start, end := CalculatePayPeriod(r.PayFrequency, *r.RunDate)
		if r.PayPeriodStart == nil {
			r.PayPeriodStart = &start
		}
		if r.PayPeriodEnd == nil {
			r.PayPeriodEnd = &end
		}
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		r.Name = DefaultName(r.PayFrequency, *r.RunDate)
	}
	return &r
}

// DefaultName reads like "Bi-weekly Payroll - Mar 2024".
func DefaultName(f paycalc.PayFrequency, runDate time.Time) string {
	return fmt.Sprintf("%s Payroll - %s", f.Display(), runDate.Format("Jan 2006"))
}

func (r *PayrollRun) Validate() []apperror.FieldError {
	var errs []apperror.FieldError
	add := func(field, msg string) {
		errs = append(errs, apperror.FieldError{Field: field, Message: msg})
	}

	if strings.TrimSpace(r.Name) == "" {
		add("name", "can't be blank")
	} else if len([]rune(r.Name)) > maxNameLength {
		add("name", fmt.Sprintf("is too long (maximum is %d characters)", maxNameLength))
	}
	if _, ok := ParseStatus(string(r.Status)); !ok {
		add("status", "is not a valid status")
	}
	if _, ok := paycalc.ParseFrequency(string(r.PayFrequency)); !ok {
		add("pay_frequency", "must be weekly, biweekly, semimonthly, or monthly")
	}
	if r.PayPeriodStart != nil && r.PayPeriodEnd != nil && !r.PayPeriodEnd.After(*r.PayPeriodStart) {
		add("pay_period_end", "must be after the pay period start")
	}
	return errs
}

func (r *PayrollRun) IsEditable() bool {
	return r.Status.IsEditable()
}

func (r *PayrollRun) CanDelete() bool {
	return r.Status != StatusProcessed
}

// TransitionTo moves r to target and stamps the audit fields. r is left
// untouched when the edge is not in the workflow.
func (r *PayrollRun) TransitionTo(target Status, actor string, now time.Time) error {
	if !r.Status.CanTransitionTo(target) {
		return apperror.New(
			apperror.CodeInvalidState,
			fmt.Sprintf("Cannot transition payroll run from %s to %s", r.Status, target),
			http.StatusConflict,
		).WithDetails(map[string]any{
			"from":    r.Status,
			"to":      target,
			"allowed": r.Status.AllowedTransitions(),
		}).WithCause(payrollrunerrors.ErrInvalidTransition)
	}
	at := now.UTC()
	r.Status = target
	r.StatusChangedBy = actor
	r.StatusChangedAt = &at
	return nil
}

// ProcessingErrors lists every precondition for processing that r misses.
func (r *PayrollRun) ProcessingErrors() []string {
	var errs []string
	if len(r.Entries) == 0 {
		errs = append(errs, "No employees selected")
	}
	if r.PayPeriodStart == nil || r.PayPeriodEnd == nil {
		errs = append(errs, "Pay period dates not set")
	}
	if r.RunDate == nil {
		errs = append(errs, "Run date not set")
	}
	if r.Status != StatusApproved {
		errs = append(errs, "Must be approved before processing")
	}
	return errs
}

func (r *PayrollRun) ReadyForProcessing() bool {
	return len(r.ProcessingErrors()) == 0
}

// HasEmployee reports whether r already has an entry for employeeID.
func (r *PayrollRun) HasEmployee(employeeID uuid.UUID) bool {
	return r.entryFor(employeeID) != nil
}

func (r *PayrollRun) entryFor(employeeID uuid.UUID) *PayrollEntry {
	for i := range r.Entries {
		if r.Entries[i].EmployeeID == employeeID {
			return &r.Entries[i]
		}
	}
	return nil
}

// Totals aggregates the current entries. Nothing here is stored.
type Totals struct {
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalNet        decimal.Decimal `json:"total_net"`
	TaxesWithheld   decimal.Decimal `json:"taxes_withheld"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	EmployeeCount   int             `json:"employee_count"`
	AverageGrossPay decimal.Decimal `json:"average_gross_pay"`
}

func (r *PayrollRun) Totals() Totals {
	t := Totals{
		TotalGross:      decimal.Zero,
		TotalNet:        decimal.Zero,
		TotalHours:      decimal.Zero,
		AverageGrossPay: decimal.Zero,
		EmployeeCount:   len(r.Entries),
	}
	for _, e := range r.Entries {
		t.TotalGross = t.TotalGross.Add(e.GrossPay)
		t.TotalNet = t.TotalNet.Add(e.NetPay)
		t.TotalHours = t.TotalHours.Add(e.HoursWorked)
	}
	t.TaxesWithheld = t.TotalGross.Sub(t.TotalNet)
	if t.EmployeeCount > 0 {
		t.AverageGrossPay = t.TotalGross.Div(decimal.NewFromInt(int64(t.EmployeeCount))).Round(2)
	}
	return t
}
