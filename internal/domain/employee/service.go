package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id int64) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	ListPending(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Activate(ctx context.Context, id int64) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (StatsResponse, error)
}
