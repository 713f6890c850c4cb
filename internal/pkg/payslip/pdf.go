// Package payslip renders stored payroll records as PDF payslips.
package payslip

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
)

// Generate renders a payslip projection into a single-page A4 PDF.
func Generate(slip payroll.PayslipResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", slip.Employee.Name, slip.Employee.EmployeeID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", slip.Employee.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s / %s", slip.Employee.Department, slip.Employee.Position))
	pdf.Ln(7)

	monthName := time.Month(slip.Period.Month).String()
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", monthName, slip.Period.Year))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay date: %s", slip.Period.PayDate.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %s", slip.Earnings.BasicSalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %s", slip.Earnings.Allowances.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime: %s", slip.Earnings.Overtime.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %s", slip.Earnings.GrossSalary.StringFixed(2)))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %s", slip.Deductions.Total.StringFixed(2)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %s", slip.NetSalary.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
