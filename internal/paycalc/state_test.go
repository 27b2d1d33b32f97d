package paycalc_test

import (
	"testing"

	"go-payroll/internal/paycalc"

	"github.com/stretchr/testify/assert"
)

func TestResolveState(t *testing.T) {
	calc := paycalc.NewCalculator(paycalc.DefaultTables())

	tests := []struct {
		name     string
		code     string
		employee string
		client   string
		want     string
	}{
		{name: "structured code wins", code: "ny", employee: "1 Main St, Austin, TX 78701", want: "NY"},
		{name: "trailing code", employee: "123 Main St, Springfield, IL 62701", want: "IL"},
		{name: "full name", employee: "500 Pine Rd, Little Rock, Arkansas", want: "AR"},
		{name: "kansas is not arkansas", employee: "Topeka, Kansas", want: "KS"},
		{name: "city name does not beat code", employee: "Kansas City, MO 64105", want: "MO"},
		{name: "code inside address", employee: "Suite 4, Fort Wayne IN 46802 USA", want: "IN"},
		{name: "care-of is not colorado", employee: "c/o Acme Co, 10 Main St, Reno", want: ""},
		{name: "suite letters are not indiana", employee: "500 Oak St Suite IN, Portland OR", want: ""},
		{name: "client fallback", employee: "unknown", client: "1 Market St, San Francisco, CA 94105", want: "CA"},
		{name: "unrecognized", employee: "Somewhere far away", want: ""},
		{name: "empty", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.ResolveState(tt.code, tt.employee, tt.client))
		})
	}
}

func TestStateWithholding(t *testing.T) {
	state := paycalc.DefaultTables().State

	p := singleBiweekly("52000")
	p.StateCode = "NY"
	p.StateAllowances = 1
	ny := state.StateWithholding(dec("2000"), p)
	assertDec(t, "107.88", ny.Withholding)
	assertDec(t, "10", ny.SDI)

	p.StateAdditional = dec("5")
	assertDec(t, "112.88", state.StateWithholding(dec("2000"), p).Withholding)

	p.StateCode = "TX"
	tx := state.StateWithholding(dec("2000"), p)
	assert.Equal(t, "TX", tx.State)
	assert.True(t, tx.Total().IsZero())

	p.StateCode = "ZZ"
	unknown := state.StateWithholding(dec("2000"), p)
	assert.Equal(t, "", unknown.State)
	assert.True(t, unknown.Total().IsZero())
}
