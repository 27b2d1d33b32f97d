package payrollrun_test

import (
	"testing"
	"time"

	"go-payroll/internal/paycalc"
	"go-payroll/internal/payrollrun"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePayPeriod(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	tests := []struct {
		name      string
		frequency paycalc.PayFrequency
		runDate   string
		start     string
		end       string
	}{
		{"weekly midweek", paycalc.FrequencyWeekly, "2024-03-13", "2024-03-11", "2024-03-17"},
		{"weekly on sunday", paycalc.FrequencyWeekly, "2024-03-17", "2024-03-11", "2024-03-17"},
		{"weekly on monday", paycalc.FrequencyWeekly, "2024-03-11", "2024-03-11", "2024-03-17"},
		{"biweekly", paycalc.FrequencyBiweekly, "2024-03-15", "2024-03-02", "2024-03-15"},
		{"monthly leap february", paycalc.FrequencyMonthly, "2024-02-10", "2024-02-01", "2024-02-29"},
		{"monthly december", paycalc.FrequencyMonthly, "2024-12-31", "2024-12-01", "2024-12-31"},
		{"semimonthly first half", paycalc.FrequencySemimonthly, "2024-04-15", "2024-04-01", "2024-04-15"},
		{"semimonthly second half", paycalc.FrequencySemimonthly, "2024-04-16", "2024-04-16", "2024-04-30"},
		{"semimonthly second half of january", paycalc.FrequencySemimonthly, "2024-01-20", "2024-01-16", "2024-01-31"},
		{"unknown falls back to biweekly", "daily", "2024-03-15", "2024-03-02", "2024-03-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := payrollrun.CalculatePayPeriod(tt.frequency, day(tt.runDate).Add(15*time.Hour))
			assert.Equal(t, tt.start, start.Format("2006-01-02"))
			assert.Equal(t, tt.end, end.Format("2006-01-02"))
		})
	}
}
