package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/peoplecore/hr-backend-go/internal/config"
	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
)

// compute derives one employee's payroll record for a month from their
// attendance summary and the deployment's payroll policy.
//
// The daily rate divides the monthly salary by the policy's working days.
// Absence deductions are the daily rate times the days short of a full
// month; a month with more worked days than the policy expects yields a
// negative deduction, i.e. extra pay, and is deliberately not clamped.
func compute(
	emp employee.Employee,
	summary attendance.MonthlySummary,
	policy config.PayrollPolicy,
	month, year int,
) payroll.Payroll {
	workingDays := decimal.NewFromInt(int64(policy.WorkingDaysPerMonth))
	dailyRate := emp.Salary.Div(workingDays)

	absentDays := int64(policy.WorkingDaysPerMonth - summary.PresentDays)
	deductions := dailyRate.Mul(decimal.NewFromInt(absentDays)).Round(2)

	overtimePay := decimal.NewFromFloat(summary.OvertimeHours).
		Mul(policy.OvertimeRatePerHour).
		Round(2)

	allowances := emp.Salary.Mul(policy.AllowanceRate).Round(2)

	rec := payroll.Payroll{
		EmployeeID:  emp.ID,
		Month:       month,
		Year:        year,
		BasicSalary: emp.Salary,
		Allowances:  allowances,
		Overtime:    overtimePay,
		Deductions:  deductions,
		Status:      payroll.StatusPending,
	}
	rec.Recalculate()
	return rec
}
