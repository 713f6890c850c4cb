package employee

import (
	"context"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		FullName:   emp.FullName(),
		Email:      emp.Email,
		Department: string(emp.Department),
		Position:   emp.Position,
		Salary:     emp.Salary,
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
		Status:     string(emp.Status),
		CreatedAt:  emp.CreatedAt,
		UpdatedAt:  emp.UpdatedAt,
	}
}

func mapEmployeesToResponses(emps []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := validator.IsValidDate(req.JoinDate)

	status := employee.StatusActive
	if req.Status != nil {
		status = employee.Status(*req.Status)
	}

	emp := employee.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: employee.Department(req.Department),
		Position:   req.Position,
		Salary:     req.Salary,
		JoinDate:   joinDate,
		Status:     status,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	emps, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapEmployeesToResponses(emps), nil
}

func (s *EmployeeServiceImpl) ListPending(ctx context.Context) ([]employee.EmployeeResponse, error) {
	pending := string(employee.StatusPending)
	emps, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{Status: &pending})
	if err != nil {
		return nil, err
	}
	return mapEmployeesToResponses(emps), nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

// Activate flips a Pending employee to Active. Activating an employee who is
// already Active is rejected so the action stays auditable.
func (s *EmployeeServiceImpl) Activate(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if emp.Status == employee.StatusActive {
		return employee.EmployeeResponse{}, employee.ErrAlreadyActive
	}

	updated, err := s.employeeRepo.UpdateStatus(ctx, id, employee.StatusActive)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) Stats(ctx context.Context) (employee.StatsResponse, error) {
	return s.employeeRepo.Stats(ctx)
}
