package period

import (
	"context"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/period"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type PeriodServiceImpl struct {
	periodRepo   period.PeriodRepository
	scheduleRepo period.ScheduleRepository
	employeeRepo employee.EmployeeRepository
}

func NewPeriodService(
	periodRepo period.PeriodRepository,
	scheduleRepo period.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) period.PeriodService {
	return &PeriodServiceImpl{
		periodRepo:   periodRepo,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

func mapPeriodToResponse(p period.PayrollPeriod) period.PeriodResponse {
	return period.PeriodResponse{
		ID:         p.ID,
		PeriodType: string(p.Type),
		PeriodName: p.Name(),
		StartDate:  p.StartDate.Format("2006-01-02"),
		EndDate:    p.EndDate.Format("2006-01-02"),
		Month:      p.Month,
		Year:       p.Year,
		Status:     string(p.Status),
		DaysCount:  p.DaysCount(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func mapScheduleToResponse(ws period.WorkSchedule) period.ScheduleResponse {
	resp := period.ScheduleResponse{
		ID:            ws.ID,
		EmployeeID:    ws.EmployeeID,
		PeriodID:      ws.PeriodID,
		WorkDays:      ws.WorkDays,
		RestDays:      ws.RestDays,
		TotalWorkDays: ws.TotalWorkDays(),
		TotalRestDays: ws.TotalRestDays(),
		Notes:         ws.Notes,
		CreatedAt:     ws.CreatedAt,
		UpdatedAt:     ws.UpdatedAt,
	}
	if ws.EmployeeName != nil {
		resp.EmployeeName = *ws.EmployeeName
	}
	if ws.PeriodName != nil {
		resp.PeriodName = *ws.PeriodName
	}
	return resp
}

func (s *PeriodServiceImpl) Create(ctx context.Context, req period.CreatePeriodRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	periodType := period.PeriodType(req.PeriodType)
	start, end := period.Bounds(periodType, req.Year, req.Month)
	if req.StartDate != nil {
		start, _ = validator.IsValidDate(*req.StartDate)
	}
	if req.EndDate != nil {
		end, _ = validator.IsValidDate(*req.EndDate)
	}

	p := period.PayrollPeriod{
		Type:      periodType,
		StartDate: start,
		EndDate:   end,
		Month:     req.Month,
		Year:      req.Year,
		Status:    period.StatusOpen,
	}

	created, err := s.periodRepo.Create(ctx, p)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return mapPeriodToResponse(created), nil
}

func (s *PeriodServiceImpl) Get(ctx context.Context, id int64) (period.PeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	return mapPeriodToResponse(p), nil
}

func (s *PeriodServiceImpl) List(ctx context.Context, filter period.PeriodFilter) ([]period.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]period.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, mapPeriodToResponse(p))
	}
	return responses, nil
}

// UpdateStatus advances the period through its lifecycle. Only the
// Open -> Processing -> Closed transitions are legal; Closed is terminal.
func (s *PeriodServiceImpl) UpdateStatus(ctx context.Context, req period.UpdatePeriodStatusRequest) (period.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return period.PeriodResponse{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, req.ID)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	next := period.Status(req.Status)
	if !p.Status.CanTransitionTo(next) {
		return period.PeriodResponse{}, period.ErrInvalidTransition
	}

	updated, err := s.periodRepo.UpdateStatus(ctx, req.ID, next)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return mapPeriodToResponse(updated), nil
}

func (s *PeriodServiceImpl) Delete(ctx context.Context, id int64) error {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status == period.StatusClosed {
		return period.ErrPeriodClosed
	}
	return s.periodRepo.Delete(ctx, id)
}

func (s *PeriodServiceImpl) CreateSchedule(ctx context.Context, req period.CreateScheduleRequest) (period.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return period.ScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return period.ScheduleResponse{}, err
	}

	p, err := s.periodRepo.GetByID(ctx, req.PeriodID)
	if err != nil {
		return period.ScheduleResponse{}, err
	}
	if p.Status != period.StatusOpen {
		return period.ScheduleResponse{}, period.ErrPeriodNotOpen
	}

	ws := period.WorkSchedule{
		EmployeeID: req.EmployeeID,
		PeriodID:   req.PeriodID,
		WorkDays:   req.WorkDays,
		RestDays:   req.RestDays,
		Notes:      req.Notes,
	}

	created, err := s.scheduleRepo.Create(ctx, ws)
	if err != nil {
		return period.ScheduleResponse{}, err
	}

	return mapScheduleToResponse(created), nil
}

func (s *PeriodServiceImpl) GetSchedule(ctx context.Context, id int64) (period.ScheduleResponse, error) {
	ws, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return period.ScheduleResponse{}, err
	}
	return mapScheduleToResponse(ws), nil
}

func (s *PeriodServiceImpl) ListSchedules(ctx context.Context, filter period.ScheduleFilter) ([]period.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]period.ScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, mapScheduleToResponse(ws))
	}
	return responses, nil
}

func (s *PeriodServiceImpl) UpdateSchedule(ctx context.Context, req period.UpdateScheduleRequest) (period.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return period.ScheduleResponse{}, err
	}

	existing, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return period.ScheduleResponse{}, err
	}
	if err := s.requireOpen(ctx, existing.PeriodID); err != nil {
		return period.ScheduleResponse{}, err
	}

	updated, err := s.scheduleRepo.Update(ctx, req)
	if err != nil {
		return period.ScheduleResponse{}, err
	}

	return mapScheduleToResponse(updated), nil
}

func (s *PeriodServiceImpl) DeleteSchedule(ctx context.Context, id int64) error {
	existing, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOpen(ctx, existing.PeriodID); err != nil {
		return err
	}
	return s.scheduleRepo.Delete(ctx, id)
}

func (s *PeriodServiceImpl) requireOpen(ctx context.Context, periodID int64) error {
	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return err
	}
	if p.Status != period.StatusOpen {
		return period.ErrPeriodNotOpen
	}
	return nil
}
