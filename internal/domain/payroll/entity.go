package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one employee's salary record for one month. Unique per
// (employee, month, year).
type Payroll struct {
	ID            int64
	EmployeeID    int64
	Month         int
	Year          int
	BasicSalary   decimal.Decimal
	Allowances    decimal.Decimal
	Overtime      decimal.Decimal
	Deductions    decimal.Decimal
	NetSalary     decimal.Decimal
	Status        Status
	ProcessedDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
	Department    *string
	Position      *string
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusProcessed Status = "Processed"
	StatusPaid      Status = "Paid"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusProcessed),
	string(StatusPaid),
}

// GrossSalary is basic salary plus allowances plus overtime pay.
func (p Payroll) GrossSalary() decimal.Decimal {
	return p.BasicSalary.Add(p.Allowances).Add(p.Overtime)
}

// Recalculate derives net salary from the stored components. It runs
// immediately before every persistence; a caller-supplied net is never
// trusted.
func (p *Payroll) Recalculate() {
	p.NetSalary = p.BasicSalary.
		Add(p.Allowances).
		Add(p.Overtime).
		Sub(p.Deductions).
		Round(2)
}

// MarkProcessed transitions the record to Processed, stamping the processed
// date only on the first transition.
func (p *Payroll) MarkProcessed(now time.Time) {
	p.Status = StatusProcessed
	if p.ProcessedDate == nil {
		p.ProcessedDate = &now
	}
}
