package period

import "context"

type PeriodRepository interface {
	Create(ctx context.Context, p PayrollPeriod) (PayrollPeriod, error)
	GetByID(ctx context.Context, id int64) (PayrollPeriod, error)
	List(ctx context.Context, filter PeriodFilter) ([]PayrollPeriod, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (PayrollPeriod, error)
	Delete(ctx context.Context, id int64) error

	// HasClosedForMonth reports whether any period of the given month/year
	// has been closed; closed months reject further payroll processing.
	HasClosedForMonth(ctx context.Context, month, year int) (bool, error)
}

type ScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id int64) (WorkSchedule, error)
	List(ctx context.Context, filter ScheduleFilter) ([]WorkSchedule, error)
	Update(ctx context.Context, req UpdateScheduleRequest) (WorkSchedule, error)
	Delete(ctx context.Context, id int64) error
}
