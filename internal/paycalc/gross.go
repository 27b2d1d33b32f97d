package paycalc

import "github.com/shopspring/decimal"

const (
	BasisSalary = "salary"
	BasisHourly = "hourly"
)

var (
	// standard 40 hours x 52 weeks
	hoursPerYear       = decimal.NewFromInt(2080)
	overtimeMultiplier = decimal.RequireFromString("1.5")
)

type OvertimeInfo struct {
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeRate  decimal.Decimal `json:"overtime_rate"`
}

type GrossPay struct {
	Amount   decimal.Decimal `json:"amount"`
	Basis    string          `json:"basis"`
	Hours    decimal.Decimal `json:"hours"`
	Overtime OvertimeInfo    `json:"overtime_info"`
}

// HourlyRateFromSalary converts an annual salary to an hourly rate in cents.
func HourlyRateFromSalary(salary decimal.NullDecimal) decimal.Decimal {
	if !salary.Valid {
		return decimal.Zero
	}
	return cents(salary.Decimal.Div(hoursPerYear))
}

// GrossPerPeriod splits an annual salary across the periods of f. Unknown
// frequencies and blank salaries yield zero.
func GrossPerPeriod(salary decimal.NullDecimal, f PayFrequency) decimal.Decimal {
	periods := f.PeriodsPerYear()
	if !salary.Valid || periods == 0 {
		return decimal.Zero
	}
	return cents(salary.Decimal.Div(decimal.NewFromInt(periods)))
}

// EffectiveHourlyRate prefers the stored hourly rate and falls back to the
// salary-derived rate.
func EffectiveHourlyRate(p Profile) decimal.Decimal {
	if positive(p.HourlyRate) {
		return p.HourlyRate.Decimal
	}
	if positive(p.Salary) {
		return HourlyRateFromSalary(p.Salary)
	}
	return decimal.Zero
}

// PeriodHours resolves the hours to pay: explicit hours win over the stored
// per-period hours; negatives count as zero.
func PeriodHours(p Profile, explicit *decimal.Decimal) decimal.Decimal {
	hours := decimal.Zero
	switch {
	case explicit != nil:
		hours = *explicit
	case p.HoursWorked.Valid:
		hours = p.HoursWorked.Decimal
	}
	return floorZero(hours)
}

// SplitHours divides hours into regular and overtime at the frequency ceiling.
func SplitHours(hours decimal.Decimal, f PayFrequency) (regular, overtime decimal.Decimal) {
	ceiling := f.RegularHoursCeiling()
	if hours.LessThanOrEqual(ceiling) {
		return hours, decimal.Zero
	}
	return ceiling, hours.Sub(ceiling)
}

// CalculateGross never fails; missing data degrades to zero.
func CalculateGross(p Profile, periodHours *decimal.Decimal) GrossPay {
	if p.salaried() {
		return GrossPay{
			Amount: GrossPerPeriod(p.Salary, p.PayFrequency),
			Basis:  BasisSalary,
			Hours:  PeriodHours(p, periodHours),
			Overtime: OvertimeInfo{
				RegularHours:  decimal.Zero,
				OvertimeHours: decimal.Zero,
				HourlyRate:    HourlyRateFromSalary(p.Salary),
				OvertimeRate:  decimal.Zero,
			},
		}
	}

	hours := PeriodHours(p, periodHours)
	rate := EffectiveHourlyRate(p)

	if p.IsContractor() {
		return GrossPay{
			Amount: cents(hours.Mul(rate)),
			Basis:  BasisHourly,
			Hours:  hours,
			Overtime: OvertimeInfo{
				RegularHours:  hours,
				OvertimeHours: decimal.Zero,
				HourlyRate:    rate,
				OvertimeRate:  decimal.Zero,
			},
		}
	}

	regular, overtime := SplitHours(hours, p.PayFrequency)
	overtimeRate := rate.Mul(overtimeMultiplier)
	amount := regular.Mul(rate).Add(overtime.Mul(overtimeRate))

	return GrossPay{
		Amount: cents(amount),
		Basis:  BasisHourly,
		Hours:  hours,
		Overtime: OvertimeInfo{
			RegularHours:  regular,
			OvertimeHours: overtime,
			HourlyRate:    rate,
			OvertimeRate:  cents(overtimeRate),
		},
	}
}
