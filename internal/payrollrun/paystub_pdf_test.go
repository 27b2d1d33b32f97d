package payrollrun_test

import (
	"strings"
	"testing"

	"go-payroll/internal/paycalc"
	"go-payroll/internal/payrollrun"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayStub_PDF(t *testing.T) {
	calc := paycalc.NewCalculator(paycalc.DefaultTables())
	emp := salariedEmployee("52000")
	entry := payrollrun.NewEntry(uuid.New(), emp, calc)
	est := entry.RecalculateNetPay(emp, "CA", calc)

	stub := payrollrun.PayStub{
		ClientName:   "Acme (West)",
		EmployeeName: emp.Name,
		RunName:      "Bi-weekly Payroll - Mar 2024",
		PeriodStart:  "2024-03-02",
		PeriodEnd:    "2024-03-15",
		RunDate:      "2024-03-15",
		Frequency:    paycalc.FrequencyBiweekly,
		Entry:        *entry,
		Estimate:     est,
	}

	pdf, err := stub.PDF()
	require.NoError(t, err)

	body := string(pdf)
	assert.True(t, strings.HasPrefix(body, "%PDF-1.4\n"))
	assert.True(t, strings.HasSuffix(body, "%%EOF"))
	assert.Contains(t, body, `(Pay Stub - Acme \(West\)) Tj`)
	assert.Contains(t, body, "(Gross pay: $2000.00) Tj")
	assert.Contains(t, body, "(State income tax \\(CA\\): $100.00) Tj")
	assert.Contains(t, body, "(State disability: $22.00) Tj")
	assert.Contains(t, body, "(Net pay: $1361.31) Tj")
}

func TestPayStub_FileName(t *testing.T) {
	id := uuid.New()
	stub := payrollrun.PayStub{
		PeriodEnd: "2024-03-31",
		Entry:     payrollrun.PayrollEntry{EmployeeID: id},
	}
	assert.Equal(t, "paystub-"+id.String()+"-2024-03-31.pdf", stub.FileName())

	stub.EmployeeName = "  Ana  María López "
	assert.Equal(t, "paystub-ana-maría-lópez-2024-03-31.pdf", stub.FileName())
}
