package payrollrun

import (
	"bytes"
	"fmt"
	"strings"

	"go-payroll/internal/paycalc"

	"github.com/shopspring/decimal"
)

// PayStub is everything printed on one employee's stub.
type PayStub struct {
	ClientName   string
	EmployeeName string
	RunName      string
	PeriodStart  string
	PeriodEnd    string
	RunDate      string
	Frequency    paycalc.PayFrequency
	Entry        PayrollEntry
	Estimate     paycalc.Estimate
}

func (s PayStub) FileName() string {
	name := strings.ToLower(strings.Join(strings.Fields(s.EmployeeName), "-"))
	if name == "" {
		name = s.Entry.EmployeeID.String()
	}
	return fmt.Sprintf("paystub-%s-%s.pdf", name, s.PeriodEnd)
}

func (s PayStub) lines() []string {
	b := s.Entry.Breakdown(s.Frequency)
	est := s.Estimate
	money := func(d decimal.Decimal) string { return "$" + d.StringFixed(2) }

	lines := []string{
		"Pay Stub - " + s.ClientName,
		"",
		"Employee: " + s.EmployeeName,
		"Payroll: " + s.RunName,
		fmt.Sprintf("Pay period: %s to %s (%s)", s.PeriodStart, s.PeriodEnd, s.Frequency.Display()),
		"Pay date: " + s.RunDate,
		"",
		fmt.Sprintf("Regular hours: %s   Overtime hours: %s", b.RegularHours.StringFixed(2), b.OvertimeHours.StringFixed(2)),
		"Hourly rate: " + money(b.HourlyRate),
		"Gross pay: " + money(s.Entry.GrossPay),
		"",
		"Federal income tax: " + money(est.FederalTaxes.Withholding),
		"Social Security: " + money(est.FederalTaxes.SocialSecurity),
		"Medicare: " + money(est.FederalTaxes.Medicare),
	}
	if est.StateTaxes.State != "" {
		lines = append(lines,
			fmt.Sprintf("State income tax (%s): %s", est.StateTaxes.State, money(est.StateTaxes.Withholding)),
		)
		if est.StateTaxes.SDI.IsPositive() {
			lines = append(lines, "State disability: "+money(est.StateTaxes.SDI))
		}
		if est.StateTaxes.SUI.IsPositive() {
			lines = append(lines, "State unemployment: "+money(est.StateTaxes.SUI))
		}
	}
	lines = append(lines,
		"Health insurance: "+money(est.Deductions.HealthInsurance),
		"401(k): "+money(est.Deductions.Retirement401k),
		"",
		"Total deductions: "+money(s.Entry.Deductions()),
		"Net pay: "+money(s.Entry.NetPay),
	)
	return lines
}

func (s PayStub) PDF() ([]byte, error) {
	return buildSimplePDF(s.lines())
}

func buildSimplePDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Pay Stub"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
