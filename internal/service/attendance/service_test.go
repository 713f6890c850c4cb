package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
)

// fakeAttendanceRepo keeps a single employee's records in memory, enough to
// drive the clock flow.
type fakeAttendanceRepo struct {
	records map[int64]attendance.Attendance // keyed by record id
	byDay   map[string]int64                // employeeID+date -> record id
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: make(map[int64]attendance.Attendance),
		byDay:   make(map[string]int64),
	}
}

func dayKey(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d/%s", employeeID, date.Format("2006-01-02"))
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if _, ok := f.byDay[dayKey(att.EmployeeID, att.Date)]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyExists
	}
	f.nextID++
	att.ID = f.nextID
	f.records[att.ID] = att
	f.byDay[dayKey(att.EmployeeID, att.Date)] = att.ID
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	id, ok := f.byDay[dayKey(employeeID, date)]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return f.records[id], nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, att)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) SetClocks(ctx context.Context, id int64, status attendance.Status, clockIn, clockOut *time.Time) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	att.Status = status
	att.ClockIn = clockIn
	att.ClockOut = clockOut
	f.records[id] = att
	return att, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeAttendanceRepo) DailyStats(ctx context.Context, date time.Time) (attendance.DailyStatsResponse, error) {
	return attendance.DailyStatsResponse{}, nil
}

type fakeEmployeeRepo struct {
	known map[int64]bool
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if !f.known[id] {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, Salary: decimal.Zero, Status: employee.StatusActive}, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id int64, status employee.Status) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeEmployeeRepo) Stats(ctx context.Context) (employee.StatsResponse, error) {
	return employee.StatsResponse{}, nil
}

func newClockService(repo *fakeAttendanceRepo, at time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: repo,
		employeeRepo:   &fakeEmployeeRepo{known: map[int64]bool{1: true}},
		now:            func() time.Time { return at },
	}
}

func TestClockInBeforeThresholdIsPresent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newClockService(repo, time.Date(2026, 1, 5, 8, 45, 0, 0, time.UTC))

	resp, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 1, ClockType: "in"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.ClockIn)
	assert.Equal(t, "08:45:00", *resp.ClockIn)
}

func TestClockInAtThresholdIsLate(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newClockService(repo, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))

	resp, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 1, ClockType: "in"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestClockInTwiceSameDayRejected(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newClockService(repo, time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC))

	_, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 1, ClockType: "in"})
	require.NoError(t, err)

	_, err = svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 1, ClockType: "in"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOutWithoutClockInRejected(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newClockService(repo, time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC))

	_, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 1, ClockType: "out"})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutCompletesDayAndKeepsStatus(t *testing.T) {
	repo := newFakeAttendanceRepo()

	in := newClockService(repo, time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC))
	_, err := in.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 1, ClockType: "in"})
	require.NoError(t, err)

	out := newClockService(repo, time.Date(2026, 1, 5, 18, 0, 0, 0, time.UTC))
	resp, err := out.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 1, ClockType: "out"})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLate), resp.Status, "late clock-in stays late after clock-out")
	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, "18:00:00", *resp.ClockOut)
	assert.InDelta(t, 8.5, resp.WorkingHours, 0.001)
}

func TestClockUnknownEmployee(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newClockService(repo, time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC))

	_, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 99, ClockType: "in"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestClockRequestValidation(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newClockService(repo, time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC))

	_, err := svc.Clock(context.Background(), attendance.ClockRequest{EmployeeID: 1, ClockType: "sideways"})
	assert.Error(t, err)
}
