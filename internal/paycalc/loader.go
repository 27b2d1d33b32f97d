package paycalc

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type bracketFile struct {
	UpTo *float64 `yaml:"up_to"`
	Rate float64  `yaml:"rate"`
}

type stateRateFile struct {
	Name            string   `yaml:"name"`
	WithholdingRate *float64 `yaml:"withholding_rate"`
	SDIRate         *float64 `yaml:"sdi_rate"`
	SUIRate         *float64 `yaml:"sui_rate"`
}

type tablesFile struct {
	Federal struct {
		AllowanceAmount    *float64                 `yaml:"allowance_amount"`
		StandardDeductions map[string]float64       `yaml:"standard_deductions"`
		Brackets           map[string][]bracketFile `yaml:"brackets"`
	} `yaml:"federal"`
	FICA struct {
		SocialSecurityRate          *float64 `yaml:"social_security_rate"`
		SocialSecurityWageBase      *float64 `yaml:"social_security_wage_base"`
		MedicareRate                *float64 `yaml:"medicare_rate"`
		AdditionalMedicareRate      *float64 `yaml:"additional_medicare_rate"`
		AdditionalMedicareThreshold *float64 `yaml:"additional_medicare_threshold"`
	} `yaml:"fica"`
	State struct {
		AllowanceAmount *float64                 `yaml:"allowance_amount"`
		Rates           map[string]stateRateFile `yaml:"rates"`
	} `yaml:"state"`
	Deductions struct {
		HealthInsurance map[string]float64 `yaml:"health_insurance"`
		RetirementRate  *float64           `yaml:"retirement_rate"`
	} `yaml:"deductions"`
}

// LoadTables reads a YAML override file on top of DefaultTables. An empty path
// returns the defaults.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()
	if path == "" {
		return tables, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tax tables %s: %w", path, err)
	}

	if err := tables.Apply(raw); err != nil {
		return Tables{}, fmt.Errorf("parse tax tables %s: %w", path, err)
	}
	return tables, nil
}

// Apply merges a YAML document into t. Keys that are absent keep their
// current value.
func (t *Tables) Apply(raw []byte) error {
	var f tablesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return err
	}

	set(&t.Federal.AllowanceAmount, f.Federal.AllowanceAmount)
	for status, v := range f.Federal.StandardDeductions {
		s, ok := ParseMaritalStatus(status)
		if !ok || s == "" {
			return fmt.Errorf("unknown marital status %q", status)
		}
		t.Federal.StandardDeductions[s] = decimal.NewFromFloat(v)
	}
	for status, rows := range f.Federal.Brackets {
		s, ok := ParseMaritalStatus(status)
		if !ok || s == "" {
			return fmt.Errorf("unknown marital status %q", status)
		}
		bs, err := toBrackets(rows)
		if err != nil {
			return fmt.Errorf("brackets %s: %w", status, err)
		}
		t.Federal.Brackets[s] = bs
	}

	set(&t.FICA.SocialSecurityRate, f.FICA.SocialSecurityRate)
	set(&t.FICA.SocialSecurityWageBase, f.FICA.SocialSecurityWageBase)
	set(&t.FICA.MedicareRate, f.FICA.MedicareRate)
	set(&t.FICA.AdditionalMedicareRate, f.FICA.AdditionalMedicareRate)
	set(&t.FICA.AdditionalMedicareThreshold, f.FICA.AdditionalMedicareThreshold)

	set(&t.State.AllowanceAmount, f.State.AllowanceAmount)
	for code, r := range f.State.Rates {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 2 {
			return fmt.Errorf("state code %q must be two letters", code)
		}
		rate := t.State.Rates[code]
		if r.Name != "" {
			rate.Name = r.Name
		}
		if rate.Name == "" {
			return fmt.Errorf("state %s needs a name", code)
		}
		set(&rate.WithholdingRate, r.WithholdingRate)
		set(&rate.SDIRate, r.SDIRate)
		set(&rate.SUIRate, r.SUIRate)
		t.State.Rates[code] = rate
	}

	for freq, v := range f.Deductions.HealthInsurance {
		pf, ok := ParseFrequency(freq)
		if !ok {
			return fmt.Errorf("unknown pay frequency %q", freq)
		}
		t.Deductions.HealthInsurance[pf] = decimal.NewFromFloat(v)
	}
	set(&t.Deductions.RetirementRate, f.Deductions.RetirementRate)

	return nil
}

func set(dst *decimal.Decimal, v *float64) {
	if v != nil {
		*dst = decimal.NewFromFloat(*v)
	}
}

func toBrackets(rows []bracketFile) ([]Bracket, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("at least one bracket is required")
	}
	if rows[len(rows)-1].UpTo != nil {
		return nil, fmt.Errorf("last bracket must be unbounded")
	}

	out := make([]Bracket, 0, len(rows))
	prev := decimal.Zero
	for i, row := range rows {
		b := Bracket{Rate: decimal.NewFromFloat(row.Rate)}
		if row.UpTo == nil {
			if i != len(rows)-1 {
				return nil, fmt.Errorf("unbounded bracket must be last")
			}
		} else {
			b.UpTo = decimal.NewFromFloat(*row.UpTo)
			if !b.UpTo.GreaterThan(prev) {
				return nil, fmt.Errorf("bracket %d bound must increase", i+1)
			}
			prev = b.UpTo
		}
		out = append(out, b)
	}
	return out, nil
}
