package paycalc

import (
	"strings"

	"github.com/shopspring/decimal"
)

type PayFrequency string

const (
	FrequencyWeekly      PayFrequency = "weekly"
	FrequencyBiweekly    PayFrequency = "biweekly"
	FrequencySemimonthly PayFrequency = "semimonthly"
	FrequencyMonthly     PayFrequency = "monthly"
)

// ParseFrequency normalizes case and surrounding space.
func ParseFrequency(v string) (PayFrequency, bool) {
	f := PayFrequency(strings.ToLower(strings.TrimSpace(v)))
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencySemimonthly, FrequencyMonthly:
		return f, true
	default:
		return f, false
	}
}

// PeriodsPerYear returns 0 for an unknown frequency.
func (f PayFrequency) PeriodsPerYear() int64 {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyBiweekly:
		return 26
	case FrequencySemimonthly:
		return 24
	case FrequencyMonthly:
		return 12
	default:
		return 0
	}
}

// RegularHoursCeiling is the number of straight-time hours in one period
// before overtime applies.
func (f PayFrequency) RegularHoursCeiling() decimal.Decimal {
	switch f {
	case FrequencyWeekly:
		return decimal.NewFromInt(40)
	case FrequencySemimonthly:
		return decimal.RequireFromString("86.67")
	case FrequencyMonthly:
		return decimal.RequireFromString("173.33")
	default:
		return decimal.NewFromInt(80)
	}
}

func (f PayFrequency) Display() string {
	switch f {
	case FrequencyWeekly:
		return "Weekly"
	case FrequencyBiweekly:
		return "Bi-weekly"
	case FrequencySemimonthly:
		return "Semi-monthly"
	case FrequencyMonthly:
		return "Monthly"
	default:
		return "Not Set"
	}
}

type EmploymentType string

const (
	EmploymentW2         EmploymentType = "W2"
	EmploymentContractor EmploymentType = "1099"
)

func ParseEmploymentType(v string) (EmploymentType, bool) {
	t := EmploymentType(strings.ToUpper(strings.TrimSpace(v)))
	switch t {
	case EmploymentW2, EmploymentContractor:
		return t, true
	default:
		return t, false
	}
}

type MaritalStatus string

const (
	MaritalSingle            MaritalStatus = "single"
	MaritalMarriedJointly    MaritalStatus = "married_jointly"
	MaritalMarriedSeparately MaritalStatus = "married_separately"
	MaritalHeadOfHousehold   MaritalStatus = "head_of_household"
)

// ParseMaritalStatus accepts blank as valid; blank withholds as single.
func ParseMaritalStatus(v string) (MaritalStatus, bool) {
	s := MaritalStatus(strings.ToLower(strings.TrimSpace(v)))
	switch s {
	case "", MaritalSingle, MaritalMarriedJointly, MaritalMarriedSeparately, MaritalHeadOfHousehold:
		return s, true
	default:
		return s, false
	}
}

// filing resolves blank or unknown statuses to single.
func (s MaritalStatus) filing() MaritalStatus {
	switch s {
	case MaritalMarriedJointly, MaritalMarriedSeparately, MaritalHeadOfHousehold:
		return s
	default:
		return MaritalSingle
	}
}

// Profile is the compensation and tax-election view of one employee that the
// calculator needs. Nullable amounts use decimal.NullDecimal so incomplete
// imports can still be calculated.
type Profile struct {
	EmploymentType    EmploymentType
	PayFrequency      PayFrequency
	Salary            decimal.NullDecimal
	HourlyRate        decimal.NullDecimal
	HoursWorked       decimal.NullDecimal
	MaritalStatus     MaritalStatus
	FederalAllowances int
	FederalAdditional decimal.Decimal
	StateAllowances   int
	StateAdditional   decimal.Decimal
	StateCode         string
}

func (p Profile) IsContractor() bool {
	return p.EmploymentType == EmploymentContractor
}

// salaried reports whether gross pay follows the salary path.
func (p Profile) salaried() bool {
	return p.EmploymentType != EmploymentContractor && positive(p.Salary)
}

func positive(v decimal.NullDecimal) bool {
	return v.Valid && v.Decimal.IsPositive()
}

func cents(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

func floorZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}
