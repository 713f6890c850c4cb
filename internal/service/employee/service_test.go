package employee

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
	nextID    int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	f.nextID++
	emp.ID = f.nextID
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if filter.Status != nil && string(emp.Status) != *filter.Status {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	active := string(employee.StatusActive)
	return f.List(ctx, employee.EmployeeFilter{Status: &active})
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, ok := f.employees[req.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	f.employees[req.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id int64, status employee.Status) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.Status = status
	f.employees[id] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) Stats(ctx context.Context) (employee.StatsResponse, error) {
	return employee.StatsResponse{}, nil
}

func createEmployee(t *testing.T, svc *EmployeeServiceImpl, email string, status *string) employee.EmployeeResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:  "Maya",
		LastName:   "Lintang",
		Email:      email,
		Department: string(employee.DepartmentEngineering),
		Position:   "Engineer",
		Salary:     decimal.NewFromInt(8000),
		JoinDate:   "2025-06-01",
		Status:     status,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo()}

	resp := createEmployee(t, svc, "maya@example.com", nil)
	assert.Equal(t, string(employee.StatusActive), resp.Status)
	assert.Equal(t, "Maya Lintang", resp.FullName)
	assert.Equal(t, "2025-06-01", resp.JoinDate)
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo()}

	createEmployee(t, svc, "maya@example.com", nil)
	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:  "Other",
		LastName:   "Person",
		Email:      "maya@example.com",
		Department: string(employee.DepartmentEngineering),
		Position:   "Engineer",
		Salary:     decimal.NewFromInt(7000),
		JoinDate:   "2025-07-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateRejectsUnknownDepartment(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo()}

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		FirstName:  "Maya",
		LastName:   "Lintang",
		Email:      "maya@example.com",
		Department: "Logistics",
		Position:   "Engineer",
		Salary:     decimal.NewFromInt(8000),
		JoinDate:   "2025-06-01",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestActivatePendingEmployee(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo()}

	pending := string(employee.StatusPending)
	created := createEmployee(t, svc, "maya@example.com", &pending)
	assert.Equal(t, pending, created.Status)

	activated, err := svc.Activate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(employee.StatusActive), activated.Status)
}

func TestActivateAlreadyActiveRejected(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo()}

	created := createEmployee(t, svc, "maya@example.com", nil)

	_, err := svc.Activate(context.Background(), created.ID)
	assert.ErrorIs(t, err, employee.ErrAlreadyActive)
}

func TestListPendingFiltersByStatus(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo()}

	pending := string(employee.StatusPending)
	createEmployee(t, svc, "active@example.com", nil)
	createEmployee(t, svc, "pending@example.com", &pending)

	got, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pending@example.com", got[0].Email)
}

func TestDeleteUnknownEmployee(t *testing.T) {
	svc := &EmployeeServiceImpl{employeeRepo: newFakeEmployeeRepo()}

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
