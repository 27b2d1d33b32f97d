package paycalc

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Estimate is the tax and deduction breakdown for one gross amount.
type Estimate struct {
	GrossPay     decimal.Decimal `json:"gross_pay"`
	FederalTaxes FederalTaxes    `json:"federal_taxes"`
	StateTaxes   StateTaxes      `json:"state_taxes"`
	Deductions   Deductions      `json:"deductions"`
	NetPay       decimal.Decimal `json:"net_pay"`
}

func (e Estimate) TotalWithholding() decimal.Decimal {
	return e.FederalTaxes.Total().Add(e.StateTaxes.Total()).Add(e.Deductions.Total())
}

// Result is a full calculation for one employee and period.
type Result struct {
	Estimate
	Basis        string          `json:"basis"`
	Hours        decimal.Decimal `json:"hours"`
	OvertimeInfo OvertimeInfo    `json:"overtime_info"`
}

type Calculator struct {
	tables Tables
	logger *zap.Logger
}

func NewCalculator(tables Tables, logger ...*zap.Logger) *Calculator {
	l := zap.L().Named("paycalc")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("paycalc")
	}
	return &Calculator{tables: tables, logger: l}
}

func (c *Calculator) Tables() Tables {
	return c.tables
}

// ResolveState picks the withholding state: the structured code, then the
// employee address, then the employer address.
func (c *Calculator) ResolveState(code, employeeAddress, clientAddress string) string {
	return c.tables.State.ResolveState(code, employeeAddress, clientAddress)
}

func (c *Calculator) Gross(p Profile, periodHours *decimal.Decimal) GrossPay {
	return CalculateGross(p, periodHours)
}

// Estimate computes taxes, deductions and net pay for gross. Contractors are
// exempt from all withholding and deductions.
func (c *Calculator) Estimate(gross decimal.Decimal, p Profile) Estimate {
	gross = cents(floorZero(gross))
	zero := Estimate{
		GrossPay:     gross,
		FederalTaxes: FederalTaxes{Withholding: decimal.Zero, SocialSecurity: decimal.Zero, Medicare: decimal.Zero},
		StateTaxes:   StateTaxes{Withholding: decimal.Zero, SDI: decimal.Zero, SUI: decimal.Zero},
		Deductions:   Deductions{HealthInsurance: decimal.Zero, Retirement401k: decimal.Zero, Other: decimal.Zero},
		NetPay:       gross,
	}
	if p.IsContractor() {
		return zero
	}
	if p.PayFrequency.PeriodsPerYear() == 0 {
		c.logger.Debug("unknown pay frequency, skipping withholding",
			zap.String("pay_frequency", string(p.PayFrequency)),
		)
		return zero
	}

	est := Estimate{
		GrossPay: gross,
		FederalTaxes: FederalTaxes{
			Withholding:    c.tables.Federal.FederalWithholding(gross, p),
			SocialSecurity: c.tables.FICA.SocialSecurity(gross, p.PayFrequency),
			Medicare:       c.tables.FICA.Medicare(gross, p.PayFrequency),
		},
		StateTaxes: c.tables.State.StateWithholding(gross, p),
		Deductions: c.tables.Deductions.Deductions(gross, p.PayFrequency),
	}
	est.NetPay = cents(floorZero(gross.Sub(est.TotalWithholding())))
	return est
}

// Calculate runs gross pay and the estimator in one step.
func (c *Calculator) Calculate(p Profile, periodHours *decimal.Decimal) Result {
	g := c.Gross(p, periodHours)
	return Result{
		Estimate:     c.Estimate(g.Amount, p),
		Basis:        g.Basis,
		Hours:        g.Hours,
		OvertimeInfo: g.Overtime,
	}
}
