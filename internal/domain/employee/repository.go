package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (Employee, error)

	// Delete removes the employee together with all dependent attendance,
	// leave, payroll and schedule rows in a single transaction.
	Delete(ctx context.Context, id int64) error

	Stats(ctx context.Context) (StatsResponse, error)
}
