package leave

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type fakeLeaveRepo struct {
	leaves map[int64]leave.Leave
	nextID int64
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{leaves: make(map[int64]leave.Leave)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	f.nextID++
	lv.ID = f.nextID
	f.leaves[lv.ID] = lv
	return lv, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	lv, ok := f.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return lv, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, lv := range f.leaves {
		if filter.Status != nil && string(lv.Status) != *filter.Status {
			continue
		}
		out = append(out, lv)
	}
	return out, nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, req leave.UpdateLeaveRequest) (leave.Leave, error) {
	lv, ok := f.leaves[req.ID]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	if req.StartDate != nil {
		lv.StartDate, _ = validator.IsValidDate(*req.StartDate)
	}
	if req.EndDate != nil {
		lv.EndDate, _ = validator.IsValidDate(*req.EndDate)
	}
	if req.Days != nil {
		lv.Days = *req.Days
	}
	if req.Reason != nil {
		lv.Reason = *req.Reason
	}
	f.leaves[req.ID] = lv
	return lv, nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id int64, status leave.Status) (leave.Leave, error) {
	lv, ok := f.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	lv.Status = status
	f.leaves[id] = lv
	return lv, nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id int64) error {
	delete(f.leaves, id)
	return nil
}

func (f *fakeLeaveRepo) Stats(ctx context.Context) (leave.StatsResponse, error) {
	return leave.StatsResponse{}, nil
}

type fakeEmployeeRepo struct{}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	if id != 1 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: 1, Salary: decimal.Zero, Status: employee.StatusActive}, nil
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

func newTestService(repo *fakeLeaveRepo) *LeaveServiceImpl {
	return &LeaveServiceImpl{leaveRepo: repo, employeeRepo: &fakeEmployeeRepo{}}
}

func createVacation(t *testing.T, svc *LeaveServiceImpl, start, end string) leave.LeaveResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: 1,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  start,
		EndDate:    end,
		Reason:     "family trip",
	})
	require.NoError(t, err)
	return resp
}

func TestCreateComputesInclusiveDays(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	resp := createVacation(t, svc, "2026-03-02", "2026-03-06")
	assert.Equal(t, 5, resp.Days)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestCreateKeepsExplicitDays(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	resp, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: 1,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Days:       3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Days, "caller-supplied days win over the computed span")
}

func TestCreateRejectsReversedRange(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	_, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: 1,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-03-06",
		EndDate:    "2026-03-02",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestApproveThenMutateRejected(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created := createVacation(t, svc, "2026-03-02", "2026-03-06")

	approved, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), approved.Status)

	_, err = svc.Reject(context.Background(), created.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	newEnd := "2026-03-10"
	_, err = svc.Update(context.Background(), leave.UpdateLeaveRequest{ID: created.ID, EndDate: &newEnd})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestUpdateRecomputesDaysWhenRangeMoves(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created := createVacation(t, svc, "2026-03-02", "2026-03-06")

	newEnd := "2026-03-09"
	updated, err := svc.Update(context.Background(), leave.UpdateLeaveRequest{ID: created.ID, EndDate: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Days)
}

func TestUpdateRejectsReversedRange(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := newTestService(repo)

	created := createVacation(t, svc, "2026-03-02", "2026-03-06")

	newEnd := "2026-02-27"
	_, err := svc.Update(context.Background(), leave.UpdateLeaveRequest{ID: created.ID, EndDate: &newEnd})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestCreateUnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeLeaveRepo())

	_, err := svc.Create(context.Background(), leave.CreateLeaveRequest{
		EmployeeID: 7,
		LeaveType:  string(leave.TypeVacation),
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
