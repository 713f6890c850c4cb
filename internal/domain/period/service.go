package period

import "context"

type PeriodService interface {
	Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	Get(ctx context.Context, id int64) (PeriodResponse, error)
	List(ctx context.Context, filter PeriodFilter) ([]PeriodResponse, error)
	UpdateStatus(ctx context.Context, req UpdatePeriodStatusRequest) (PeriodResponse, error)
	Delete(ctx context.Context, id int64) error

	// Schedule edits are only accepted while the owning period is Open.
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)
	GetSchedule(ctx context.Context, id int64) (ScheduleResponse, error)
	ListSchedules(ctx context.Context, filter ScheduleFilter) ([]ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id int64) error
}
