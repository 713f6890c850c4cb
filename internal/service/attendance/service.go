package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

// lateHour is the hour of day at or after which a clock-in counts as Late
// rather than Present.
const lateHour = 9

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		Status:       string(att.Status),
		WorkingHours: att.WorkingHours(),
		Notes:        att.Notes,
		CreatedAt:    att.CreatedAt,
		UpdatedAt:    att.UpdatedAt,
	}
	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	if att.ClockIn != nil {
		s := att.ClockIn.Format("15:04:05")
		resp.ClockIn = &s
	}
	if att.ClockOut != nil {
		s := att.ClockOut.Format("15:04:05")
		resp.ClockOut = &s
	}
	return resp
}

func mapAttendancesToResponses(atts []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, mapAttendanceToResponse(att))
	}
	return responses
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		Notes:      req.Notes,
	}
	if req.ClockIn != nil {
		if t, ok := attendance.ParseClock(*req.ClockIn); ok {
			clockIn := combineClock(date, t)
			att.ClockIn = &clockIn
		}
	}
	if req.ClockOut != nil {
		if t, ok := attendance.ParseClock(*req.ClockOut); ok {
			clockOut := combineClock(date, t)
			att.ClockOut = &clockOut
		}
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(created), nil
}

func (s *AttendanceServiceImpl) Get(ctx context.Context, id int64) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapAttendanceToResponse(att), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	atts, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapAttendancesToResponses(atts), nil
}

func (s *AttendanceServiceImpl) Today(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	today := s.now().Format("2006-01-02")
	atts, err := s.attendanceRepo.List(ctx, attendance.AttendanceFilter{Date: &today})
	if err != nil {
		return nil, err
	}
	return mapAttendancesToResponses(atts), nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.Update(ctx, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(updated), nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// Clock records today's clock-in or clock-out for an employee. Clocking in
// twice on the same day, or clocking out before clocking in, is rejected.
func (s *AttendanceServiceImpl) Clock(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	switch {
	case err == nil:
	case errors.Is(err, attendance.ErrAttendanceNotFound):
	default:
		return attendance.AttendanceResponse{}, err
	}
	found := err == nil

	if req.ClockType == "in" {
		if found && existing.ClockIn != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}

		status := attendance.StatusPresent
		if now.Hour() >= lateHour {
			status = attendance.StatusLate
		}

		if !found {
			created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
				EmployeeID: req.EmployeeID,
				Date:       today,
				Status:     status,
				ClockIn:    &now,
			})
			if err != nil {
				return attendance.AttendanceResponse{}, err
			}
			return mapAttendanceToResponse(created), nil
		}

		updated, err := s.attendanceRepo.SetClocks(ctx, existing.ID, status, &now, existing.ClockOut)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return mapAttendanceToResponse(updated), nil
	}

	// clock out
	if !found || existing.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}

	updated, err := s.attendanceRepo.SetClocks(ctx, existing.ID, existing.Status, existing.ClockIn, &now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return mapAttendanceToResponse(updated), nil
}

func (s *AttendanceServiceImpl) Stats(ctx context.Context) (attendance.DailyStatsResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.attendanceRepo.DailyStats(ctx, today)
}

func combineClock(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.UTC,
	)
}
