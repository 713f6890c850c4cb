package payroll

import "context"

type PayrollService interface {
	// Process runs the payroll engine for one month: every Active employee
	// without an existing record for the period gets one computed from their
	// attendance. Re-runs are idempotent and existing records are untouched.
	Process(ctx context.Context, req ProcessPayrollRequest) (ProcessPayrollResponse, error)

	Get(ctx context.Context, id int64) (PayrollResponse, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollResponse, error)
	Update(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id int64) error

	// Payslip is a pure read-side projection of a stored record.
	Payslip(ctx context.Context, id int64) (PayslipResponse, error)
	PayslipPDF(ctx context.Context, id int64) ([]byte, error)

	Stats(ctx context.Context, month, year int) (StatsResponse, error)
}
