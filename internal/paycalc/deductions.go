package paycalc

import "github.com/shopspring/decimal"

type Deductions struct {
	HealthInsurance decimal.Decimal `json:"health_insurance"`
	Retirement401k  decimal.Decimal `json:"retirement_401k"`
	Other           decimal.Decimal `json:"other"`
}

func (d Deductions) Total() decimal.Decimal {
	return d.HealthInsurance.Add(d.Retirement401k).Add(d.Other)
}

func (t DeductionTable) Deductions(gross decimal.Decimal, f PayFrequency) Deductions {
	out := Deductions{HealthInsurance: decimal.Zero, Retirement401k: decimal.Zero, Other: decimal.Zero}
	if !gross.IsPositive() {
		return out
	}
	if v, ok := t.HealthInsurance[f]; ok {
		out.HealthInsurance = cents(v)
	}
	out.Retirement401k = cents(gross.Mul(t.RetirementRate))
	return out
}
