package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Get(ctx context.Context, id int64) (LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)
	ListPending(ctx context.Context) ([]LeaveResponse, error)
	Update(ctx context.Context, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id int64) (LeaveResponse, error)
	Reject(ctx context.Context, id int64) (LeaveResponse, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (StatsResponse, error)
}
