package payroll

import "context"

type PayrollRepository interface {
	// Create persists a new record. The (employee, month, year) uniqueness
	// constraint is the authoritative duplicate guard; a violated constraint
	// surfaces as ErrPayrollAlreadyExists.
	Create(ctx context.Context, rec Payroll) (Payroll, error)

	GetByID(ctx context.Context, id int64) (Payroll, error)
	GetByEmployeePeriod(ctx context.Context, employeeID int64, month, year int) (Payroll, error)
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, error)
	Update(ctx context.Context, rec Payroll) (Payroll, error)
	Delete(ctx context.Context, id int64) error

	Stats(ctx context.Context, month, year int) (StatsResponse, error)
}
