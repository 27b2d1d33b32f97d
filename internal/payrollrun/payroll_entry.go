package payrollrun

import (
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/paycalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayrollEntry is one employee's result within a run. Hours, rate and pay
// are a snapshot and only change through the Recalculate methods.
type PayrollEntry struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PayrollRunID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_entries_employee_run"`
	EmployeeID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_entries_employee_run"`
	Employee     *EntryEmployee  `gorm:"foreignKey:EmployeeID;references:ID"`
	HoursWorked  decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	PayRate      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	GrossPay     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	NetPay       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EntryEmployee is the slice of the employee row shown next to an entry.
type EntryEmployee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Title          string
	EmploymentType paycalc.EmploymentType
}

func (EntryEmployee) TableName() string {
	return "employees"
}

// NewEntry snapshots e into runID. Gross and net both start at the
// calculated gross; taxes are applied by RecalculateNetPay.
func NewEntry(runID uuid.UUID, e *employee.Employee, calc *paycalc.Calculator) *PayrollEntry {
	g := calc.Gross(e.PayProfile(""), nil)
	entry := &PayrollEntry{
		ID:           uuid.New(),
		PayrollRunID: runID,
		EmployeeID:   e.ID,
		HoursWorked:  g.Hours,
		PayRate:      e.PayRate(),
		GrossPay:     g.Amount,
		NetPay:       g.Amount,
	}
	entry.clampNet()
	return entry
}

// Deductions is everything withheld from the entry.
func (p *PayrollEntry) Deductions() decimal.Decimal {
	return p.GrossPay.Sub(p.NetPay)
}

// SetPay stores gross and net, holding net at or below gross.
func (p *PayrollEntry) SetPay(gross, net decimal.Decimal) {
	p.GrossPay = gross
	p.NetPay = net
	p.clampNet()
}

// RecalculateGrossPay refreshes the snapshot from the employee's current
// data. Calling it twice without changing e gives the same result.
func (p *PayrollEntry) RecalculateGrossPay(e *employee.Employee, calc *paycalc.Calculator) decimal.Decimal {
	g := calc.Gross(e.PayProfile(""), nil)
	p.HoursWorked = g.Hours
	p.PayRate = e.PayRate()
	p.GrossPay = g.Amount
	p.clampNet()
	return p.GrossPay
}

// RecalculateNetPay runs the estimator on the stored gross for e, withholding
// for stateCode.
func (p *PayrollEntry) RecalculateNetPay(e *employee.Employee, stateCode string, calc *paycalc.Calculator) paycalc.Estimate {
	est := calc.Estimate(p.GrossPay, e.PayProfile(stateCode))
	p.NetPay = est.NetPay
	p.clampNet()
	return est
}

// Breakdown splits the entry's hours at the frequency's regular ceiling.
type Breakdown struct {
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	Deductions    decimal.Decimal `json:"deductions"`
}

func (p *PayrollEntry) Breakdown(f paycalc.PayFrequency) Breakdown {
	regular, overtime := paycalc.SplitHours(p.HoursWorked, f)
	return Breakdown{
		RegularHours:  regular,
		OvertimeHours: overtime,
		HourlyRate:    p.PayRate,
		Deductions:    p.Deductions(),
	}
}

func (p *PayrollEntry) clampNet() {
	if p.GrossPay.IsNegative() {
		p.GrossPay = decimal.Zero
	}
	if p.NetPay.GreaterThan(p.GrossPay) {
		p.NetPay = p.GrossPay
	}
	if p.NetPay.IsNegative() {
		p.NetPay = decimal.Zero
	}
}

// BeforeSave keeps net <= gross for writes that bypass SetPay.
func (p *PayrollEntry) BeforeSave(tx *gorm.DB) error {
	p.clampNet()
	return nil
}
