package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hr-backend-go/internal/config"
	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/domain/period"
)

// In-memory repository fakes. Only the methods the payroll engine touches
// carry behavior; the rest satisfy the interfaces.

type fakePayrollRepo struct {
	records  map[int64]payroll.Payroll // keyed by employee id
	nextID   int64
	failWith error // forced Create error
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[int64]payroll.Payroll)}
}

func (f *fakePayrollRepo) Create(ctx context.Context, rec payroll.Payroll) (payroll.Payroll, error) {
	if f.failWith != nil {
		return payroll.Payroll{}, f.failWith
	}
	if _, ok := f.records[rec.EmployeeID]; ok {
		return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
	}
	f.nextID++
	rec.ID = f.nextID
	f.records[rec.EmployeeID] = rec
	return rec, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}

func (f *fakePayrollRepo) GetByEmployeePeriod(ctx context.Context, employeeID int64, month, year int) (payroll.Payroll, error) {
	rec, ok := f.records[employeeID]
	if !ok || rec.Month != month || rec.Year != year {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	var out []payroll.Payroll
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, rec payroll.Payroll) (payroll.Payroll, error) {
	f.records[rec.EmployeeID] = rec
	return rec, nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakePayrollRepo) Stats(ctx context.Context, month, year int) (payroll.StatsResponse, error) {
	return payroll.StatsResponse{Month: month, Year: year}, nil
}

type fakeEmployeeRepo struct {
	active []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	for _, emp := range f.active {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return f.active, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return f.active, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id int64, status employee.Status) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeEmployeeRepo) Stats(ctx context.Context) (employee.StatsResponse, error) {
	return employee.StatsResponse{}, nil
}

type fakeAttendanceRepo struct {
	byEmployee map[int64][]attendance.Attendance
	failFor    int64 // employee id whose lookup fails
}

var errAttendanceUnavailable = assert.AnError

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Attendance, error) {
	if f.failFor != 0 && employeeID == f.failFor {
		return nil, errAttendanceUnavailable
	}
	return f.byEmployee[employeeID], nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}

func (f *fakeAttendanceRepo) SetClocks(ctx context.Context, id int64, status attendance.Status, clockIn, clockOut *time.Time) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeAttendanceRepo) DailyStats(ctx context.Context, date time.Time) (attendance.DailyStatsResponse, error) {
	return attendance.DailyStatsResponse{}, nil
}

type fakePeriodRepo struct {
	closedMonths map[[2]int]bool
}

func (f *fakePeriodRepo) Create(ctx context.Context, p period.PayrollPeriod) (period.PayrollPeriod, error) {
	return p, nil
}

func (f *fakePeriodRepo) GetByID(ctx context.Context, id int64) (period.PayrollPeriod, error) {
	return period.PayrollPeriod{}, period.ErrPeriodNotFound
}

func (f *fakePeriodRepo) List(ctx context.Context, filter period.PeriodFilter) ([]period.PayrollPeriod, error) {
	return nil, nil
}

func (f *fakePeriodRepo) UpdateStatus(ctx context.Context, id int64, status period.Status) (period.PayrollPeriod, error) {
	return period.PayrollPeriod{}, period.ErrPeriodNotFound
}

func (f *fakePeriodRepo) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakePeriodRepo) HasClosedForMonth(ctx context.Context, month, year int) (bool, error) {
	if f.closedMonths == nil {
		return false, nil
	}
	return f.closedMonths[[2]int{month, year}], nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// workedDay builds an attendance record with the given shift on an
// arbitrary day of January 2026.
func workedDay(day int, status attendance.Status, inHour, outHour int) attendance.Attendance {
	date := time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC)
	in := time.Date(0, 1, 1, inHour, 0, 0, 0, time.UTC)
	out := time.Date(0, 1, 1, outHour, 0, 0, 0, time.UTC)
	return attendance.Attendance{
		EmployeeID: 1,
		Date:       date,
		Status:     status,
		ClockIn:    &in,
		ClockOut:   &out,
	}
}

func newTestService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	periodRepo period.PeriodRepository,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		periodRepo:     periodRepo,
		policy:         config.DefaultPayrollPolicy(),
		now:            func() time.Time { return time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC) },
	}
}

func testEmployee(id int64, salary string) employee.Employee {
	return employee.Employee{
		ID:         id,
		FirstName:  "Dana",
		LastName:   "Reyes",
		Email:      "dana@example.com",
		Department: employee.DepartmentEngineering,
		Position:   "Engineer",
		Salary:     dec(salary),
		Status:     employee.StatusActive,
	}
}

func TestProcessComputesSalaryComponents(t *testing.T) {
	ctx := context.Background()

	// 20 worked days out of a 22-day policy month, 3 overtime hours.
	var records []attendance.Attendance
	for day := 1; day <= 19; day++ {
		records = append(records, workedDay(day, attendance.StatusPresent, 9, 17))
	}
	records = append(records, workedDay(20, attendance.StatusLate, 9, 20)) // 11h shift, 3h OT

	payrollRepo := newFakePayrollRepo()
	svc := newTestService(
		payrollRepo,
		&fakeEmployeeRepo{active: []employee.Employee{testEmployee(1, "8000")}},
		&fakeAttendanceRepo{byEmployee: map[int64][]attendance.Attendance{1: records}},
		&fakePeriodRepo{},
	)

	resp, err := svc.Process(ctx, payroll.ProcessPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	require.Len(t, resp.Payroll, 1)
	assert.Empty(t, resp.Errors)

	got := resp.Payroll[0]
	assert.True(t, got.BasicSalary.Equal(dec("8000")), "basic %s", got.BasicSalary)
	assert.True(t, got.Allowances.Equal(dec("800")), "allowances %s", got.Allowances)
	assert.True(t, got.Overtime.Equal(dec("75")), "overtime %s", got.Overtime)
	assert.True(t, got.Deductions.Equal(dec("727.27")), "deductions %s", got.Deductions)
	assert.True(t, got.NetSalary.Equal(dec("8147.73")), "net %s", got.NetSalary)
	assert.Equal(t, string(payroll.StatusProcessed), got.Status)
	require.NotNil(t, got.ProcessedDate)
	assert.Equal(t, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), *got.ProcessedDate)
}

func TestProcessPersistsProcessedRecords(t *testing.T) {
	ctx := context.Background()

	payrollRepo := newFakePayrollRepo()
	svc := newTestService(
		payrollRepo,
		&fakeEmployeeRepo{active: []employee.Employee{testEmployee(1, "8000")}},
		&fakeAttendanceRepo{},
		&fakePeriodRepo{},
	)

	_, err := svc.Process(ctx, payroll.ProcessPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)

	stored, err := payrollRepo.GetByEmployeePeriod(ctx, 1, 1, 2026)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusProcessed, stored.Status)
	require.NotNil(t, stored.ProcessedDate)
	assert.Equal(t, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), *stored.ProcessedDate)
}

func TestProcessFullMonthNoDeductions(t *testing.T) {
	ctx := context.Background()

	var records []attendance.Attendance
	for day := 1; day <= 22; day++ {
		records = append(records, workedDay(day, attendance.StatusPresent, 9, 17))
	}

	svc := newTestService(
		newFakePayrollRepo(),
		&fakeEmployeeRepo{active: []employee.Employee{testEmployee(1, "8000")}},
		&fakeAttendanceRepo{byEmployee: map[int64][]attendance.Attendance{1: records}},
		&fakePeriodRepo{},
	)

	resp, err := svc.Process(ctx, payroll.ProcessPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	require.Len(t, resp.Payroll, 1)

	got := resp.Payroll[0]
	assert.True(t, got.Deductions.IsZero(), "deductions %s", got.Deductions)
	assert.True(t, got.NetSalary.Equal(dec("8800")), "net %s", got.NetSalary)
}

func TestProcessIsIdempotent(t *testing.T) {
	ctx := context.Background()

	payrollRepo := newFakePayrollRepo()
	svc := newTestService(
		payrollRepo,
		&fakeEmployeeRepo{active: []employee.Employee{testEmployee(1, "8000")}},
		&fakeAttendanceRepo{},
		&fakePeriodRepo{},
	)

	first, err := svc.Process(ctx, payroll.ProcessPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	require.Len(t, first.Payroll, 1)

	second, err := svc.Process(ctx, payroll.ProcessPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	assert.Empty(t, second.Payroll, "re-run must not create records")
	assert.Empty(t, second.Errors)
	assert.Len(t, payrollRepo.records, 1)
}

func TestProcessTreatsConstraintConflictAsSkip(t *testing.T) {
	ctx := context.Background()

	payrollRepo := newFakePayrollRepo()
	payrollRepo.failWith = payroll.ErrPayrollAlreadyExists

	svc := newTestService(
		payrollRepo,
		&fakeEmployeeRepo{active: []employee.Employee{testEmployee(1, "8000")}},
		&fakeAttendanceRepo{},
		&fakePeriodRepo{},
	)

	resp, err := svc.Process(ctx, payroll.ProcessPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	assert.Empty(t, resp.Payroll)
	assert.Empty(t, resp.Errors, "a lost create race is a skip, not a failure")
}

func TestProcessCollectsPerEmployeeErrors(t *testing.T) {
	ctx := context.Background()

	svc := newTestService(
		newFakePayrollRepo(),
		&fakeEmployeeRepo{active: []employee.Employee{
			testEmployee(1, "8000"),
			testEmployee(2, "5000"),
		}},
		&fakeAttendanceRepo{failFor: 2},
		&fakePeriodRepo{},
	)

	resp, err := svc.Process(ctx, payroll.ProcessPayrollRequest{Month: 1, Year: 2026})
	require.NoError(t, err)
	assert.Len(t, resp.Payroll, 1, "healthy employees still process")
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, int64(2), resp.Errors[0].EmployeeID)
}

func TestProcessRequiresMonthAndYear(t *testing.T) {
	svc := newTestService(newFakePayrollRepo(), &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakePeriodRepo{})

	_, err := svc.Process(context.Background(), payroll.ProcessPayrollRequest{})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = svc.Process(context.Background(), payroll.ProcessPayrollRequest{Month: 1})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestProcessRejectsClosedMonth(t *testing.T) {
	svc := newTestService(
		newFakePayrollRepo(),
		&fakeEmployeeRepo{active: []employee.Employee{testEmployee(1, "8000")}},
		&fakeAttendanceRepo{},
		&fakePeriodRepo{closedMonths: map[[2]int]bool{{1, 2026}: true}},
	)

	_, err := svc.Process(context.Background(), payroll.ProcessPayrollRequest{Month: 1, Year: 2026})
	assert.ErrorIs(t, err, period.ErrPeriodClosed)
}

func TestUpdateRecomputesNetAndStampsProcessedDate(t *testing.T) {
	ctx := context.Background()

	payrollRepo := newFakePayrollRepo()
	rec := payroll.Payroll{
		EmployeeID:  1,
		Month:       1,
		Year:        2026,
		BasicSalary: dec("8000"),
		Allowances:  dec("800"),
		Overtime:    dec("0"),
		Deductions:  dec("0"),
		Status:      payroll.StatusPending,
	}
	rec.Recalculate()
	stored, err := payrollRepo.Create(ctx, rec)
	require.NoError(t, err)

	svc := newTestService(payrollRepo, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakePeriodRepo{})

	overtime := dec("150")
	status := string(payroll.StatusProcessed)
	got, err := svc.Update(ctx, payroll.UpdatePayrollRequest{
		ID:       stored.ID,
		Overtime: &overtime,
		Status:   &status,
	})
	require.NoError(t, err)
	assert.True(t, got.NetSalary.Equal(dec("8950")), "net %s", got.NetSalary)
	require.NotNil(t, got.ProcessedDate)
	firstStamp := *got.ProcessedDate

	// A second Processed update keeps the original stamp.
	later, err := svc.Update(ctx, payroll.UpdatePayrollRequest{ID: stored.ID, Status: &status})
	require.NoError(t, err)
	require.NotNil(t, later.ProcessedDate)
	assert.Equal(t, firstStamp, *later.ProcessedDate)
}

func TestPayslipProjection(t *testing.T) {
	ctx := context.Background()

	payrollRepo := newFakePayrollRepo()
	processedAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	name := "Dana Reyes"
	email := "dana@example.com"
	department := "Engineering"
	position := "Engineer"
	rec := payroll.Payroll{
		EmployeeID:    42,
		Month:         1,
		Year:          2026,
		BasicSalary:   dec("8000"),
		Allowances:    dec("800"),
		Overtime:      dec("75"),
		Deductions:    dec("727.27"),
		Status:        payroll.StatusProcessed,
		ProcessedDate: &processedAt,
		EmployeeName:  &name,
		EmployeeEmail: &email,
		Department:    &department,
		Position:      &position,
	}
	rec.Recalculate()
	stored, err := payrollRepo.Create(ctx, rec)
	require.NoError(t, err)

	svc := newTestService(payrollRepo, &fakeEmployeeRepo{}, &fakeAttendanceRepo{}, &fakePeriodRepo{})

	slip, err := svc.Payslip(ctx, stored.ID)
	require.NoError(t, err)

	assert.Equal(t, "EMP-0042", slip.Employee.EmployeeID)
	assert.Equal(t, "Dana Reyes", slip.Employee.Name)
	assert.Equal(t, 1, slip.Period.Month)
	assert.Equal(t, processedAt, slip.Period.PayDate)
	assert.True(t, slip.Earnings.GrossSalary.Equal(dec("8875")))
	assert.True(t, slip.Deductions.Total.Equal(dec("727.27")))
	assert.True(t, slip.NetSalary.Equal(dec("8147.73")))
}

func TestComputeOvertimeFromPolicy(t *testing.T) {
	policy := config.PayrollPolicy{
		WorkingDaysPerMonth: 20,
		OvertimeRatePerHour: dec("40"),
		AllowanceRate:       dec("0.2"),
	}

	summary := attendance.MonthlySummary{PresentDays: 20, OvertimeHours: 2.5}
	rec := compute(testEmployee(1, "6000"), summary, policy, 3, 2026)

	assert.True(t, rec.Allowances.Equal(dec("1200")), "allowances %s", rec.Allowances)
	assert.True(t, rec.Overtime.Equal(dec("100")), "overtime %s", rec.Overtime)
	assert.True(t, rec.Deductions.IsZero())
	assert.True(t, rec.NetSalary.Equal(dec("7300")), "net %s", rec.NetSalary)
}
