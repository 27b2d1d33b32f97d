package paycalc

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

type StateTaxes struct {
	State       string          `json:"state,omitempty"`
	Withholding decimal.Decimal `json:"withholding"`
	SDI         decimal.Decimal `json:"sdi"`
	SUI         decimal.Decimal `json:"sui"`
}

func (s StateTaxes) Total() decimal.Decimal {
	return s.Withholding.Add(s.SDI).Add(s.SUI)
}

var nonLetters = regexp.MustCompile(`[^A-Z]+`)

// ResolveState returns the first state code recognized in candidates, in
// order. Each candidate is either a bare code or a free-form address.
// A trailing code ("Springfield, IL 62701") wins, then full names, then any
// code token in the part after the last comma.
func (t StateTable) ResolveState(candidates ...string) string {
	for _, c := range candidates {
		if code := t.scan(c); code != "" {
			return code
		}
	}
	return ""
}

func (t StateTable) scan(text string) string {
	upper := " " + strings.Join(nonLetters.Split(strings.ToUpper(text), -1), " ") + " "
	if strings.TrimSpace(upper) == "" {
		return ""
	}

	tokens := strings.Fields(upper)
	if _, ok := t.Rates[tokens[len(tokens)-1]]; ok {
		return tokens[len(tokens)-1]
	}

	// longest names first so KANSAS does not shadow ARKANSAS
	type named struct{ code, name string }
	names := make([]named, 0, len(t.Rates))
	for code, r := range t.Rates {
		if r.Name != "" {
			names = append(names, named{code, strings.ToUpper(r.Name)})
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i].name) != len(names[j].name) {
			return len(names[i].name) > len(names[j].name)
		}
		return names[i].code < names[j].code
	})
	for _, n := range names {
		if strings.Contains(upper, " "+n.name+" ") {
			return n.code
		}
	}

	tail := text
	if i := strings.LastIndex(text, ","); i >= 0 {
		tail = text[i+1:]
	}
	tailTokens := nonLetters.Split(strings.ToUpper(tail), -1)
	for i := len(tailTokens) - 1; i >= 0; i-- {
		if _, ok := t.Rates[tailTokens[i]]; ok {
			return tailTokens[i]
		}
	}
	return ""
}

// StateWithholding applies the flat state rate to annualized gross less state
// allowances. Unrecognized states withhold nothing.
func (t StateTable) StateWithholding(gross decimal.Decimal, p Profile) StateTaxes {
	code := strings.ToUpper(strings.TrimSpace(p.StateCode))
	rate, ok := t.Rates[code]
	if !ok {
		return StateTaxes{Withholding: decimal.Zero, SDI: decimal.Zero, SUI: decimal.Zero}
	}

	out := StateTaxes{State: code, Withholding: decimal.Zero, SDI: decimal.Zero, SUI: decimal.Zero}
	periods := p.PayFrequency.PeriodsPerYear()
	if periods == 0 || !gross.IsPositive() {
		return out
	}

	if rate.WithholdingRate.IsPositive() {
		n := decimal.NewFromInt(periods)
		taxable := floorZero(gross.Mul(n).Sub(t.AllowanceAmount.Mul(decimal.NewFromInt(int64(max(p.StateAllowances, 0))))))
		out.Withholding = cents(floorZero(taxable.Mul(rate.WithholdingRate).Div(n).Add(p.StateAdditional)))
	}
	out.SDI = cents(gross.Mul(rate.SDIRate))
	out.SUI = cents(gross.Mul(rate.SUIRate))
	return out
}
