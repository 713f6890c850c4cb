package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/peoplecore/hr-backend-go/internal/config"
	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/domain/period"
	"github.com/peoplecore/hr-backend-go/internal/pkg/payslip"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	periodRepo     period.PeriodRepository
	policy         config.PayrollPolicy

	now func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	periodRepo period.PeriodRepository,
	policy config.PayrollPolicy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		periodRepo:     periodRepo,
		policy:         policy,
		now:            time.Now,
	}
}

func mapPayrollToResponse(p payroll.Payroll) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		Month:         p.Month,
		Year:          p.Year,
		BasicSalary:   p.BasicSalary,
		Allowances:    p.Allowances,
		Overtime:      p.Overtime,
		Deductions:    p.Deductions,
		GrossSalary:   p.GrossSalary(),
		NetSalary:     p.NetSalary,
		Status:        string(p.Status),
		ProcessedDate: p.ProcessedDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	return resp
}

// Process runs the payroll batch for one month. Every Active employee
// without an existing record for that month gets a freshly computed one;
// employees who already have a record are skipped, which makes re-runs
// idempotent. Per-employee failures are collected and reported instead of
// aborting the batch.
func (s *PayrollServiceImpl) Process(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
	if req.Month == 0 || req.Year == 0 {
		return payroll.ProcessPayrollResponse{}, payroll.ErrInvalidPeriod
	}
	if err := req.Validate(); err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	closed, err := s.periodRepo.HasClosedForMonth(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}
	if closed {
		return payroll.ProcessPayrollResponse{}, period.ErrPeriodClosed
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	start, end := attendance.MonthRange(req.Year, req.Month)

	var created []payroll.PayrollResponse
	var procErrors []payroll.ProcessError

	for _, emp := range employees {
		// Pre-check keeps re-runs quiet; the unique constraint below stays
		// the authoritative guard against concurrent processors.
		if _, err := s.payrollRepo.GetByEmployeePeriod(ctx, emp.ID, req.Month, req.Year); err == nil {
			continue
		} else if !errors.Is(err, payroll.ErrPayrollNotFound) {
			procErrors = append(procErrors, payroll.ProcessError{EmployeeID: emp.ID, Error: err.Error()})
			continue
		}

		records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, emp.ID, start, end)
		if err != nil {
			procErrors = append(procErrors, payroll.ProcessError{EmployeeID: emp.ID, Error: err.Error()})
			continue
		}

		rec := compute(emp, attendance.Summarize(records), s.policy, req.Month, req.Year)
		rec.MarkProcessed(s.now())

		stored, err := s.payrollRepo.Create(ctx, rec)
		if err != nil {
			if errors.Is(err, payroll.ErrPayrollAlreadyExists) {
				// A concurrent run got there first; the period outcome is
				// the same, so treat it as a skip.
				continue
			}
			slog.ErrorContext(ctx, "payroll record creation failed",
				slog.Int64("employee_id", emp.ID),
				slog.Int("month", req.Month),
				slog.Int("year", req.Year),
				slog.Any("error", err),
			)
			procErrors = append(procErrors, payroll.ProcessError{EmployeeID: emp.ID, Error: err.Error()})
			continue
		}

		name := emp.FullName()
		stored.EmployeeName = &name
		created = append(created, mapPayrollToResponse(stored))
	}

	return payroll.ProcessPayrollResponse{
		Message: fmt.Sprintf("payroll processed for %d employees", len(created)),
		Payroll: created,
		Errors:  procErrors,
	}, nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id int64) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return mapPayrollToResponse(p), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, mapPayrollToResponse(p))
	}
	return responses, nil
}

// Update edits the adjustable salary components and always recomputes the
// stored net from them; a caller-supplied net salary is never accepted.
// Moving the record to Processed stamps the processed date once.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if req.Allowances != nil {
		rec.Allowances = *req.Allowances
	}
	if req.Overtime != nil {
		rec.Overtime = *req.Overtime
	}
	if req.Deductions != nil {
		rec.Deductions = *req.Deductions
	}
	rec.Recalculate()

	if req.Status != nil {
		next := payroll.Status(*req.Status)
		if next == payroll.StatusProcessed {
			rec.MarkProcessed(s.now())
		} else {
			rec.Status = next
		}
	}

	updated, err := s.payrollRepo.Update(ctx, rec)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return mapPayrollToResponse(updated), nil
}

func (s *PayrollServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.payrollRepo.Delete(ctx, id)
}

// Payslip projects a stored record into its payslip view. Nothing is
// recomputed or persisted here.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, id int64) (payroll.PayslipResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	slip := payroll.PayslipResponse{
		Employee: payroll.PayslipEmployee{
			EmployeeID: fmt.Sprintf("EMP-%04d", p.EmployeeID),
		},
		Period: payroll.PayslipPeriod{
			Month: p.Month,
			Year:  p.Year,
		},
		Earnings: payroll.PayslipEarnings{
			BasicSalary: p.BasicSalary,
			Allowances:  p.Allowances,
			Overtime:    p.Overtime,
			GrossSalary: p.GrossSalary(),
		},
		Deductions: payroll.PayslipDeductions{
			Total: p.Deductions,
		},
		NetSalary: p.NetSalary,
	}
	if p.EmployeeName != nil {
		slip.Employee.Name = *p.EmployeeName
	}
	if p.EmployeeEmail != nil {
		slip.Employee.Email = *p.EmployeeEmail
	}
	if p.Department != nil {
		slip.Employee.Department = *p.Department
	}
	if p.Position != nil {
		slip.Employee.Position = *p.Position
	}
	if p.ProcessedDate != nil {
		slip.Period.PayDate = *p.ProcessedDate
	} else {
		slip.Period.PayDate = p.UpdatedAt
	}

	return slip, nil
}

func (s *PayrollServiceImpl) PayslipPDF(ctx context.Context, id int64) ([]byte, error) {
	slip, err := s.Payslip(ctx, id)
	if err != nil {
		return nil, err
	}
	return payslip.Generate(slip)
}

func (s *PayrollServiceImpl) Stats(ctx context.Context, month, year int) (payroll.StatsResponse, error) {
	return s.payrollRepo.Stats(ctx, month, year)
}
