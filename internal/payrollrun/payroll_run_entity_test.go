package payrollrun_test

import (
	"strings"
	"testing"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/paycalc"
	"go-payroll/internal/payrollrun"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func datePtr(s string) *time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return &d
}

func hourlyEmployee(rate, hours string) *employee.Employee {
	return &employee.Employee{
		ID:             uuid.New(),
		Name:           "Sam Hourly",
		EmploymentType: paycalc.EmploymentW2,
		PayFrequency:   paycalc.FrequencyBiweekly,
		Status:         employee.StatusActive,
		HourlyRate:     decimal.NewNullDecimal(dec(rate)),
		HoursWorked:    decimal.NewNullDecimal(dec(hours)),
	}
}

func salariedEmployee(salary string) *employee.Employee {
	return &employee.Employee{
		ID:             uuid.New(),
		Name:           "Jane Salary",
		State:          "CA",
		EmploymentType: paycalc.EmploymentW2,
		PayFrequency:   paycalc.FrequencyBiweekly,
		Status:         employee.StatusActive,
		Salary:         decimal.NewNullDecimal(dec(salary)),
	}
}

func TestNewPayrollRun_Defaults(t *testing.T) {
	today := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	run := payrollrun.NewPayrollRun(payrollrun.PayrollRun{ClientID: uuid.New(), PayFrequency: "Monthly"}, today)

	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.Equal(t, payrollrun.StatusDraft, run.Status)
	assert.Equal(t, paycalc.FrequencyMonthly, run.PayFrequency)
	assert.Equal(t, "2024-03-15", run.RunDate.Format("2006-01-02"))
	assert.Equal(t, "2024-03-01", run.PayPeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2024-03-31", run.PayPeriodEnd.Format("2006-01-02"))
	assert.Equal(t, "Monthly Payroll - Mar 2024", run.Name)
	assert.Empty(t, run.Validate())
}

func TestNewPayrollRun_ExplicitDatesWin(t *testing.T) {
	run := payrollrun.NewPayrollRun(payrollrun.PayrollRun{
		Name:           "  Spring bonus ",
		RunDate:        datePtr("2024-03-15"),
		PayPeriodStart: datePtr("2024-03-04"),
	}, time.Now())

	assert.Equal(t, "Spring bonus", run.Name)
	assert.Equal(t, paycalc.FrequencyBiweekly, run.PayFrequency)
	assert.Equal(t, "2024-03-04", run.PayPeriodStart.Format("2006-01-02"))
	assert.Equal(t, "2024-03-15", run.PayPeriodEnd.Format("2006-01-02"))
}

func TestPayrollRun_Validate(t *testing.T) {
	run := &payrollrun.PayrollRun{
		Name:           strings.Repeat("x", 256),
		Status:         "paid",
		PayFrequency:   "daily",
		PayPeriodStart: datePtr("2024-03-15"),
		PayPeriodEnd:   datePtr("2024-03-15"),
	}

	fields := map[string]bool{}
	for _, fe := range run.Validate() {
		fields[fe.Field] = true
	}
	assert.Equal(t, map[string]bool{
		"name":           true,
		"status":         true,
		"pay_frequency":  true,
		"pay_period_end": true,
	}, fields)
}

func TestPayrollRun_ProcessingErrors(t *testing.T) {
	t.Run("draft without entries", func(t *testing.T) {
		run := payrollrun.NewPayrollRun(payrollrun.PayrollRun{}, time.Now())

		assert.False(t, run.ReadyForProcessing())
		errs := run.ProcessingErrors()
		assert.Contains(t, errs, "No employees selected")
		assert.Contains(t, errs, "Must be approved before processing")
	})

	t.Run("missing dates", func(t *testing.T) {
		run := &payrollrun.PayrollRun{Status: payrollrun.StatusApproved, Entries: []payrollrun.PayrollEntry{{}}}
		assert.Equal(t, []string{"Pay period dates not set", "Run date not set"}, run.ProcessingErrors())
	})

	t.Run("approved with one entry", func(t *testing.T) {
		run := payrollrun.NewPayrollRun(payrollrun.PayrollRun{Status: payrollrun.StatusApproved}, time.Now())
		run.Entries = []payrollrun.PayrollEntry{{ID: uuid.New()}}

		assert.True(t, run.ReadyForProcessing())
		assert.Empty(t, run.ProcessingErrors())
	})
}

func TestPayrollRun_Totals(t *testing.T) {
	run := &payrollrun.PayrollRun{Entries: []payrollrun.PayrollEntry{
		{GrossPay: dec("2000"), NetPay: dec("1483.31"), HoursWorked: dec("80")},
		{GrossPay: dec("1900"), NetPay: dec("1500"), HoursWorked: dec("90")},
		{GrossPay: dec("1000"), NetPay: dec("1000"), HoursWorked: dec("0")},
	}}

	totals := run.Totals()
	assert.Equal(t, "4900", totals.TotalGross.String())
	assert.Equal(t, "3983.31", totals.TotalNet.String())
	assert.Equal(t, "916.69", totals.TaxesWithheld.String())
	assert.Equal(t, "170", totals.TotalHours.String())
	assert.Equal(t, 3, totals.EmployeeCount)
	assert.Equal(t, "1633.33", totals.AverageGrossPay.String())

	empty := (&payrollrun.PayrollRun{}).Totals()
	assert.True(t, empty.TotalGross.IsZero())
	assert.True(t, empty.AverageGrossPay.IsZero())
	assert.Zero(t, empty.EmployeeCount)
}

func TestNewEntry_Snapshot(t *testing.T) {
	calc := paycalc.NewCalculator(paycalc.DefaultTables())
	emp := hourlyEmployee("20", "90")
	runID := uuid.New()

	entry := payrollrun.NewEntry(runID, emp, calc)

	assert.Equal(t, runID, entry.PayrollRunID)
	assert.Equal(t, emp.ID, entry.EmployeeID)
	assert.Equal(t, "1900", entry.GrossPay.String())
	assert.Equal(t, "1900", entry.NetPay.String())
	assert.Equal(t, "90", entry.HoursWorked.String())
	assert.Equal(t, "20", entry.PayRate.String())

	b := entry.Breakdown(paycalc.FrequencyBiweekly)
	assert.Equal(t, "80", b.RegularHours.String())
	assert.Equal(t, "10", b.OvertimeHours.String())

	// later employee edits do not leak into the snapshot
	emp.HourlyRate = decimal.NewNullDecimal(dec("30"))
	assert.Equal(t, "1900", entry.GrossPay.String())
}

func TestPayrollEntry_NetNeverExceedsGross(t *testing.T) {
	var entry payrollrun.PayrollEntry
	entry.SetPay(dec("1000"), dec("1200"))
	assert.Equal(t, "1000", entry.NetPay.String())
	assert.True(t, entry.Deductions().IsZero())

	entry.NetPay = dec("5000")
	require.NoError(t, entry.BeforeSave(nil))
	assert.Equal(t, "1000", entry.NetPay.String())
}

func TestPayrollEntry_RecalculateIsIdempotent(t *testing.T) {
	calc := paycalc.NewCalculator(paycalc.DefaultTables())
	emp := salariedEmployee("52000")
	entry := payrollrun.NewEntry(uuid.New(), emp, calc)

	emp.Salary = decimal.NewNullDecimal(dec("78000"))
	first := entry.RecalculateGrossPay(emp, calc)
	second := entry.RecalculateGrossPay(emp, calc)
	assert.Equal(t, "3000", first.String())
	assert.True(t, first.Equal(second))

	est := entry.RecalculateNetPay(emp, "", calc)
	again := entry.RecalculateNetPay(emp, "", calc)
	assert.True(t, est.NetPay.Equal(again.NetPay))
	assert.True(t, entry.NetPay.Equal(est.NetPay))
	assert.True(t, entry.NetPay.LessThan(entry.GrossPay))
}

func TestPayrollEntry_RecalculateNetPayWithState(t *testing.T) {
	calc := paycalc.NewCalculator(paycalc.DefaultTables())
	emp := salariedEmployee("52000")
	entry := payrollrun.NewEntry(uuid.New(), emp, calc)

	entry.RecalculateNetPay(emp, "CA", calc)
	assert.Equal(t, "1361.31", entry.NetPay.String())
	assert.Equal(t, "638.69", entry.Deductions().String())
}

func TestPayrollEntry_ContractorNetEqualsGross(t *testing.T) {
	calc := paycalc.NewCalculator(paycalc.DefaultTables())
	emp := hourlyEmployee("50", "100")
	emp.EmploymentType = paycalc.EmploymentContractor

	entry := payrollrun.NewEntry(uuid.New(), emp, calc)
	entry.RecalculateNetPay(emp, "NY", calc)

	assert.Equal(t, "5000", entry.GrossPay.String())
	assert.Equal(t, "5000", entry.NetPay.String())
}
