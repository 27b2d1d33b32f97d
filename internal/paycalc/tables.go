package paycalc

import "github.com/shopspring/decimal"

// Bracket taxes income up to UpTo at Rate. A zero UpTo is unbounded and must
// be last.
type Bracket struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

type FederalTable struct {
	AllowanceAmount    decimal.Decimal
	StandardDeductions map[MaritalStatus]decimal.Decimal
	Brackets           map[MaritalStatus][]Bracket
}

type FICATable struct {
	SocialSecurityRate          decimal.Decimal
	SocialSecurityWageBase      decimal.Decimal
	MedicareRate                decimal.Decimal
	AdditionalMedicareRate      decimal.Decimal
	AdditionalMedicareThreshold decimal.Decimal
}

type StateRate struct {
	Name            string
	WithholdingRate decimal.Decimal
	SDIRate         decimal.Decimal
	SUIRate         decimal.Decimal
}

type StateTable struct {
	AllowanceAmount decimal.Decimal
	// keyed by two-letter postal code
	Rates map[string]StateRate
}

type DeductionTable struct {
	HealthInsurance map[PayFrequency]decimal.Decimal
	RetirementRate  decimal.Decimal
}

// Tables holds every rate, bracket and threshold used by the estimator.
type Tables struct {
	Federal    FederalTable
	FICA       FICATable
	State      StateTable
	Deductions DeductionTable
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func brackets(bounds []string, rates []string) []Bracket {
	out := make([]Bracket, 0, len(rates))
	for i, r := range rates {
		b := Bracket{Rate: d(r)}
		if i < len(bounds) {
			b.UpTo = d(bounds[i])
		}
		out = append(out, b)
	}
	return out
}

// DefaultTables returns the 2024 federal figures and a flat-rate
// approximation for state withholding.
func DefaultTables() Tables {
	rates := []string{"0.10", "0.12", "0.22", "0.24", "0.32", "0.35", "0.37"}

	return Tables{
		Federal: FederalTable{
			AllowanceAmount: d("4300"),
			StandardDeductions: map[MaritalStatus]decimal.Decimal{
				MaritalSingle:            d("14600"),
				MaritalMarriedJointly:    d("29200"),
				MaritalMarriedSeparately: d("14600"),
				MaritalHeadOfHousehold:   d("21900"),
			},
			Brackets: map[MaritalStatus][]Bracket{
				MaritalSingle:            brackets([]string{"11600", "47150", "100525", "191950", "243725", "609350"}, rates),
				MaritalMarriedJointly:    brackets([]string{"23200", "94300", "201050", "383900", "487450", "731200"}, rates),
				MaritalMarriedSeparately: brackets([]string{"11600", "47150", "100525", "191950", "243725", "365600"}, rates),
				MaritalHeadOfHousehold:   brackets([]string{"16550", "63100", "100500", "191950", "243700", "609350"}, rates),
			},
		},
		FICA: FICATable{
			SocialSecurityRate:          d("0.062"),
			SocialSecurityWageBase:      d("168600"),
			MedicareRate:                d("0.0145"),
			AdditionalMedicareRate:      d("0.009"),
			AdditionalMedicareThreshold: d("200000"),
		},
		State: StateTable{
			AllowanceAmount: d("1000"),
			Rates:           defaultStateRates(),
		},
		Deductions: DeductionTable{
			HealthInsurance: map[PayFrequency]decimal.Decimal{
				FrequencyWeekly:      d("50"),
				FrequencyBiweekly:    d("100"),
				FrequencySemimonthly: d("108.33"),
				FrequencyMonthly:     d("216.67"),
			},
			RetirementRate: d("0.05"),
		},
	}
}

func defaultStateRates() map[string]StateRate {
	flat := func(name, rate string) StateRate {
		return StateRate{Name: name, WithholdingRate: d(rate)}
	}
	none := func(name string) StateRate {
		return StateRate{Name: name}
	}

	return map[string]StateRate{
		"AK": none("Alaska"),
		"AR": flat("Arkansas", "0.044"),
		"AZ": flat("Arizona", "0.025"),
		"CA": {Name: "California", WithholdingRate: d("0.05"), SDIRate: d("0.011")},
		"CO": flat("Colorado", "0.044"),
		"FL": none("Florida"),
		"GA": flat("Georgia", "0.0549"),
		"IL": flat("Illinois", "0.0495"),
		"IN": flat("Indiana", "0.0305"),
		"KS": flat("Kansas", "0.057"),
		"KY": flat("Kentucky", "0.04"),
		"MA": flat("Massachusetts", "0.05"),
		"MI": flat("Michigan", "0.0425"),
		"MO": flat("Missouri", "0.048"),
		"NC": flat("North Carolina", "0.045"),
		"NH": none("New Hampshire"),
		"NJ": {Name: "New Jersey", WithholdingRate: d("0.05"), SDIRate: d("0.0009")},
		"NV": none("Nevada"),
		"NY": {Name: "New York", WithholdingRate: d("0.055"), SDIRate: d("0.005")},
		"OH": flat("Ohio", "0.035"),
		"PA": flat("Pennsylvania", "0.0307"),
		"SD": none("South Dakota"),
		"TN": none("Tennessee"),
		"TX": none("Texas"),
		"UT": flat("Utah", "0.0465"),
		"VA": flat("Virginia", "0.0575"),
		"WA": none("Washington"),
		"WY": none("Wyoming"),
	}
}
