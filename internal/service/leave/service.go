package leave

import (
	"context"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func mapLeaveToResponse(lv leave.Leave) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:         lv.ID,
		EmployeeID: lv.EmployeeID,
		LeaveType:  string(lv.Type),
		StartDate:  lv.StartDate.Format("2006-01-02"),
		EndDate:    lv.EndDate.Format("2006-01-02"),
		Days:       lv.Days,
		Status:     string(lv.Status),
		Reason:     lv.Reason,
		CreatedAt:  lv.CreatedAt,
		UpdatedAt:  lv.UpdatedAt,
	}
	if lv.EmployeeName != nil {
		resp.EmployeeName = *lv.EmployeeName
	}
	return resp
}

func mapLeavesToResponses(leaves []leave.Leave) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		responses = append(responses, mapLeaveToResponse(lv))
	}
	return responses
}

func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	days := req.Days
	if days == 0 {
		days = leave.DaysBetween(start, end)
	}

	lv := leave.Leave{
		EmployeeID: req.EmployeeID,
		Type:       leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Status:     leave.StatusPending,
		Reason:     req.Reason,
	}

	created, err := s.leaveRepo.Create(ctx, lv)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(created), nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	lv, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapLeaveToResponse(lv), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapLeavesToResponses(leaves), nil
}

func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.LeaveResponse, error) {
	pending := string(leave.StatusPending)
	leaves, err := s.leaveRepo.List(ctx, leave.LeaveFilter{Status: &pending})
	if err != nil {
		return nil, err
	}
	return mapLeavesToResponses(leaves), nil
}

func (s *LeaveServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	// Recompute days when the range moves and the caller did not pin it.
	if req.Days == nil && (req.StartDate != nil || req.EndDate != nil) {
		start := existing.StartDate
		end := existing.EndDate
		if req.StartDate != nil {
			start, _ = validator.IsValidDate(*req.StartDate)
		}
		if req.EndDate != nil {
			end, _ = validator.IsValidDate(*req.EndDate)
		}
		if end.Before(start) {
			return leave.LeaveResponse{}, leave.ErrInvalidDateRange
		}
		days := leave.DaysBetween(start, end)
		req.Days = &days
	}

	updated, err := s.leaveRepo.Update(ctx, req)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(updated), nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return s.setStatus(ctx, id, leave.StatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	return s.setStatus(ctx, id, leave.StatusRejected)
}

func (s *LeaveServiceImpl) setStatus(ctx context.Context, id int64, status leave.Status) (leave.LeaveResponse, error) {
	existing, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapLeaveToResponse(updated), nil
}

func (s *LeaveServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.leaveRepo.Delete(ctx, id)
}

func (s *LeaveServiceImpl) Stats(ctx context.Context) (leave.StatsResponse, error) {
	return s.leaveRepo.Stats(ctx)
}
