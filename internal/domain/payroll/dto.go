package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type ProcessPayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month == 0 || r.Year == 0 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month and year are required"})
		return errs
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePayrollRequest struct {
	ID         int64            `json:"-"`
	Allowances *decimal.Decimal `json:"allowances,omitempty"`
	Overtime   *decimal.Decimal `json:"overtime,omitempty"`
	Deductions *decimal.Decimal `json:"deductions,omitempty"`
	Status     *string          `json:"status,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Pending, Processed, Paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	Month      *int
	Year       *int
	EmployeeID *int64
}

type PayrollResponse struct {
	ID            int64           `json:"id"`
	EmployeeID    int64           `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	Allowances    decimal.Decimal `json:"allowances"`
	Overtime      decimal.Decimal `json:"overtime"`
	Deductions    decimal.Decimal `json:"deductions"`
	GrossSalary   decimal.Decimal `json:"gross_salary"`
	NetSalary     decimal.Decimal `json:"net_salary"`
	Status        string          `json:"status"`
	ProcessedDate *time.Time      `json:"processed_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProcessError reports one employee's failure during a batch run. Failures
// never abort the batch and are never swallowed.
type ProcessError struct {
	EmployeeID int64  `json:"employee_id"`
	Error      string `json:"error"`
}

type ProcessPayrollResponse struct {
	Message string            `json:"message"`
	Payroll []PayrollResponse `json:"payroll"`
	Errors  []ProcessError    `json:"errors,omitempty"`
}

type PayslipEmployee struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	EmployeeID string `json:"employee_id"`
}

type PayslipPeriod struct {
	Month   int       `json:"month"`
	Year    int       `json:"year"`
	PayDate time.Time `json:"pay_date"`
}

type PayslipEarnings struct {
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowances  decimal.Decimal `json:"allowances"`
	Overtime    decimal.Decimal `json:"overtime"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
}

type PayslipDeductions struct {
	Total decimal.Decimal `json:"total"`
}

type PayslipResponse struct {
	Employee   PayslipEmployee   `json:"employee"`
	Period     PayslipPeriod     `json:"period"`
	Earnings   PayslipEarnings   `json:"earnings"`
	Deductions PayslipDeductions `json:"deductions"`
	NetSalary  decimal.Decimal   `json:"net_salary"`
}

type StatsResponse struct {
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	TotalPayroll   decimal.Decimal `json:"total_payroll"`
	ProcessedCount int64           `json:"processed_count"`
	PendingCount   int64           `json:"pending_count"`
}
