package paycalc

import "github.com/shopspring/decimal"

type FederalTaxes struct {
	Withholding    decimal.Decimal `json:"withholding"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
}

func (f FederalTaxes) Total() decimal.Decimal {
	return f.Withholding.Add(f.SocialSecurity).Add(f.Medicare)
}

// progressive applies brackets to taxable income.
func progressive(bs []Bracket, taxable decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, b := range bs {
		if !taxable.GreaterThan(lower) {
			break
		}
		upper := taxable
		if !b.UpTo.IsZero() && b.UpTo.LessThan(taxable) {
			upper = b.UpTo
		}
		tax = tax.Add(upper.Sub(lower).Mul(b.Rate))
		if b.UpTo.IsZero() {
			break
		}
		lower = b.UpTo
	}
	return tax
}

// FederalWithholding annualizes gross, removes the standard deduction and
// allowances, runs the brackets and de-annualizes. Additional withholding is
// added per period.
func (t FederalTable) FederalWithholding(gross decimal.Decimal, p Profile) decimal.Decimal {
	periods := p.PayFrequency.PeriodsPerYear()
	if periods == 0 || !gross.IsPositive() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(periods)
	status := p.MaritalStatus.filing()

	taxable := gross.Mul(n).
		Sub(t.StandardDeductions[status]).
		Sub(t.AllowanceAmount.Mul(decimal.NewFromInt(int64(max(p.FederalAllowances, 0)))))

	annual := decimal.Zero
	if taxable.IsPositive() {
		annual = progressive(t.Brackets[status], taxable)
	}

	return cents(floorZero(annual.Div(n).Add(p.FederalAdditional)))
}

func (t FICATable) SocialSecurity(gross decimal.Decimal, f PayFrequency) decimal.Decimal {
	periods := f.PeriodsPerYear()
	if periods == 0 || !gross.IsPositive() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(periods)
	if gross.Mul(n).GreaterThan(t.SocialSecurityWageBase) {
		return cents(t.SocialSecurityWageBase.Mul(t.SocialSecurityRate).Div(n))
	}
	return cents(gross.Mul(t.SocialSecurityRate))
}

func (t FICATable) Medicare(gross decimal.Decimal, f PayFrequency) decimal.Decimal {
	if !gross.IsPositive() {
		return decimal.Zero
	}
	tax := gross.Mul(t.MedicareRate)
	periods := f.PeriodsPerYear()
	if periods > 0 && gross.Mul(decimal.NewFromInt(periods)).GreaterThan(t.AdditionalMedicareThreshold) {
		tax = tax.Add(gross.Mul(t.AdditionalMedicareRate))
	}
	return cents(tax)
}
