package paycalc_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-payroll/internal/paycalc"

	"github.com/stretchr/testify/assert"
)

func writeTables(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tax_tables.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadTables_EmptyPathReturnsDefaults(t *testing.T) {
	tables, err := paycalc.LoadTables("")
	assert.NoError(t, err)
	assertDec(t, "168600", tables.FICA.SocialSecurityWageBase)
	assert.Len(t, tables.Federal.Brackets[paycalc.MaritalSingle], 7)
}

func TestLoadTables_OverridesIndividualValues(t *testing.T) {
	path := writeTables(t, `
fica:
  social_security_wage_base: 176100
federal:
  standard_deductions:
    single: 15000
  brackets:
    head_of_household:
      - {up_to: 20000, rate: 0.1}
      - {rate: 0.2}
state:
  rates:
    or: {name: Oregon, withholding_rate: 0.08}
    ca: {sdi_rate: 0.012}
deductions:
  retirement_rate: 0.03
  health_insurance:
    weekly: 60
`)

	tables, err := paycalc.LoadTables(path)
	assert.NoError(t, err)

	assertDec(t, "176100", tables.FICA.SocialSecurityWageBase)
	assertDec(t, "0.062", tables.FICA.SocialSecurityRate)
	assertDec(t, "15000", tables.Federal.StandardDeductions[paycalc.MaritalSingle])
	assertDec(t, "29200", tables.Federal.StandardDeductions[paycalc.MaritalMarriedJointly])
	assert.Len(t, tables.Federal.Brackets[paycalc.MaritalHeadOfHousehold], 2)
	assertDec(t, "0.08", tables.State.Rates["OR"].WithholdingRate)
	assertDec(t, "0.012", tables.State.Rates["CA"].SDIRate)
	assertDec(t, "0.05", tables.State.Rates["CA"].WithholdingRate)
	assertDec(t, "0.03", tables.Deductions.RetirementRate)
	assertDec(t, "60", tables.Deductions.HealthInsurance[paycalc.FrequencyWeekly])
	assertDec(t, "100", tables.Deductions.HealthInsurance[paycalc.FrequencyBiweekly])

	calc := paycalc.NewCalculator(tables)
	assert.Equal(t, "OR", calc.ResolveState("", "Portland, Oregon", ""))
}

func TestLoadTables_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: "fica: [1, 2"},
		{name: "unknown status", body: "federal:\n  standard_deductions:\n    widowed: 1\n"},
		{name: "unbounded bracket not last", body: "federal:\n  brackets:\n    single:\n      - {rate: 0.1}\n      - {up_to: 100, rate: 0.2}\n"},
		{name: "decreasing bounds", body: "federal:\n  brackets:\n    single:\n      - {up_to: 100, rate: 0.1}\n      - {up_to: 50, rate: 0.2}\n"},
		{name: "bounded last bracket", body: "federal:\n  brackets:\n    single: [{up_to: 10000, rate: 0.1}]\n"},
		{name: "empty brackets", body: "federal:\n  brackets:\n    single: []\n"},
		{name: "unnamed new state", body: "state:\n  rates:\n    ZZ: {withholding_rate: 0.1}\n"},
		{name: "bad frequency", body: "deductions:\n  health_insurance:\n    daily: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := paycalc.LoadTables(writeTables(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := paycalc.LoadTables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTables_ApplyBoundedLastBracketKeepsDefaults(t *testing.T) {
	tables := paycalc.DefaultTables()
	err := tables.Apply([]byte("federal:\n  brackets:\n    single: [{up_to: 10000, rate: 0.1}]\n"))
	assert.Error(t, err)
	assert.Len(t, tables.Federal.Brackets[paycalc.MaritalSingle], 7)
	assert.True(t, tables.Federal.Brackets[paycalc.MaritalSingle][6].UpTo.IsZero())
}
