package attendance

import "context"

type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id int64) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
	Today(ctx context.Context) ([]AttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id int64) error

	// Clock handles the clock-in/clock-out action. Clocking in at or after
	// 09:00 marks the day Late instead of Present.
	Clock(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	Stats(ctx context.Context) (DailyStatsResponse, error)
}
