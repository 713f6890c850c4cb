package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, lv Leave) (Leave, error)
	GetByID(ctx context.Context, id int64) (Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
	Update(ctx context.Context, req UpdateLeaveRequest) (Leave, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (Leave, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (StatsResponse, error)
}
