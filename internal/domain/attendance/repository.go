package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)

	// GetByEmployeeAndDate is used by the clock endpoint to find today's
	// record before deciding between create and update.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// ListByEmployeeAndRange feeds the payroll aggregation: all records for
	// one employee whose date falls within [start, end] inclusive.
	ListByEmployeeAndRange(ctx context.Context, employeeID int64, start, end time.Time) ([]Attendance, error)

	Update(ctx context.Context, req UpdateAttendanceRequest) (Attendance, error)
	SetClocks(ctx context.Context, id int64, status Status, clockIn, clockOut *time.Time) (Attendance, error)
	Delete(ctx context.Context, id int64) error

	DailyStats(ctx context.Context, date time.Time) (DailyStatsResponse, error)
}
