package employee

import (
	"strings"
	"time"

	"go-payroll/internal/paycalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Employee is a pay profile. Nullable compensation fields stay nullable so
// partially imported records can still be drafted into a run.
type Employee struct {
	ID                           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID                     uuid.UUID `gorm:"type:uuid;index"`
	Name                         string
	Title                        string
	Department                   string
	Email                        string
	Phone                        string
	Address                      string
	State                        string                 `gorm:"size:2"`
	EmploymentType               paycalc.EmploymentType `gorm:"size:8;index"`
	PayFrequency                 paycalc.PayFrequency   `gorm:"size:16;index"`
	Status                       Status                 `gorm:"size:16;index"`
	Salary                       decimal.NullDecimal    `gorm:"type:numeric(12,2)"`
	HourlyRate                   decimal.NullDecimal    `gorm:"type:numeric(10,2)"`
	HoursWorked                  decimal.NullDecimal    `gorm:"type:numeric(8,2)"`
	HireDate                     *time.Time             `gorm:"type:date"`
	MaritalStatus                paycalc.MaritalStatus  `gorm:"size:32"`
	FederalWithholdingAllowances int
	FederalAdditionalWithholding decimal.Decimal `gorm:"type:numeric(8,2)"`
	StateWithholdingAllowances   int
	StateAdditionalWithholding   decimal.Decimal `gorm:"type:numeric(8,2)"`
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}

// NewEmployee copies in and fills the defaults a new record gets: W2,
// biweekly, active, zero allowances and additional withholding, hired today.
func NewEmployee(in Employee, today time.Time) *Employee {
	e := in
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.EmploymentType == "" {
		e.EmploymentType = paycalc.EmploymentW2
	}
	if e.PayFrequency == "" {
		e.PayFrequency = paycalc.FrequencyBiweekly
	}
	if e.Status == "" {
		e.Status = StatusActive
	}
	if e.HireDate == nil {
		d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		e.HireDate = &d
	}
	e.Name = strings.TrimSpace(e.Name)
	e.State = strings.ToUpper(strings.TrimSpace(e.State))
	return &e
}

func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}

func (e *Employee) IsW2() bool {
	return e.EmploymentType == paycalc.EmploymentW2
}

func (e *Employee) IsContractor() bool {
	return e.EmploymentType == paycalc.EmploymentContractor
}

// CalculateHourlyRate is salary / 2080 in cents, zero without a salary.
func (e *Employee) CalculateHourlyRate() decimal.Decimal {
	return paycalc.HourlyRateFromSalary(e.Salary)
}

func (e *Employee) CalculateGrossPayPerPeriod() decimal.Decimal {
	return paycalc.GrossPerPeriod(e.Salary, e.PayFrequency)
}

// PayProfile is the calculator's view of e. stateCode is the already
// resolved withholding state.
func (e *Employee) PayProfile(stateCode string) paycalc.Profile {
	return paycalc.Profile{
		EmploymentType:    e.EmploymentType,
		PayFrequency:      e.PayFrequency,
		Salary:            e.Salary,
		HourlyRate:        e.HourlyRate,
		HoursWorked:       e.HoursWorked,
		MaritalStatus:     e.MaritalStatus,
		FederalAllowances: e.FederalWithholdingAllowances,
		FederalAdditional: e.FederalAdditionalWithholding,
		StateAllowances:   e.StateWithholdingAllowances,
		StateAdditional:   e.StateAdditionalWithholding,
		StateCode:         stateCode,
	}
}

// PayRate is the hourly rate an entry snapshots: the stored hourly rate,
// else the salary-derived one.
func (e *Employee) PayRate() decimal.Decimal {
	return paycalc.EffectiveHourlyRate(e.PayProfile(""))
}

// MissingPayrollFields lists blank fields that payroll processing needs.
func (e *Employee) MissingPayrollFields() []string {
	var missing []string
	if !e.Salary.Valid && !e.HourlyRate.Valid {
		missing = append(missing, "salary")
	}
	if !e.HoursWorked.Valid && !(e.IsW2() && e.Salary.Valid) {
		missing = append(missing, "hours_worked")
	}
	if e.HireDate == nil {
		missing = append(missing, "hire_date")
	}
	return missing
}

func (e *Employee) DisplayName() string {
	if t := strings.TrimSpace(e.Title); t != "" {
		return e.Name + " - " + t
	}
	return e.Name
}

func (e *Employee) StatusDisplay() string {
	switch e.Status {
	case StatusInactive:
		return "Inactive"
	default:
		return "Active"
	}
}

func (e *Employee) EmploymentTypeDisplay() string {
	if e.IsContractor() {
		return "1099 Contractor"
	}
	return "W2 Employee"
}

func (e *Employee) PayFrequencyDisplay() string {
	if e.PayFrequency == "" {
		return paycalc.FrequencyBiweekly.Display()
	}
	return e.PayFrequency.Display()
}

func (e *Employee) MaritalStatusDisplay() string {
	switch e.MaritalStatus {
	case paycalc.MaritalSingle:
		return "Single"
	case paycalc.MaritalMarriedJointly:
		return "Married Filing Jointly"
	case paycalc.MaritalMarriedSeparately:
		return "Married Filing Separately"
	case paycalc.MaritalHeadOfHousehold:
		return "Head of Household"
	default:
		return "Not specified"
	}
}
