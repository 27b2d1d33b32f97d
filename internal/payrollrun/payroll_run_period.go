package payrollrun

import (
	"time"

	"go-payroll/internal/paycalc"
)

// CalculatePayPeriod derives the default period bounds for a run dated
// runDate. Unknown frequencies fall back to biweekly.
func CalculatePayPeriod(f paycalc.PayFrequency, runDate time.Time) (start, end time.Time) {
	d := dateOnly(runDate)

	switch f {
	case paycalc.FrequencyWeekly:
		// Monday through Sunday
		offset := (int(d.Weekday()) + 6) % 7
		start = d.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6)
	case paycalc.FrequencyMonthly:
		start = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	case paycalc.FrequencySemimonthly:
		if d.Day() <= 15 {
			return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC),
				time.Date(d.Year(), d.Month(), 15, 0, 0, 0, 0, time.UTC)
		}
		start = time.Date(d.Year(), d.Month(), 16, 0, 0, 0, 0, time.UTC)
		return start, time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	default:
		return d.AddDate(0, 0, -13), d
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
