package response

import (
	"errors"
	"net/http"

	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/domain/auth"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/domain/period"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrAlreadyActive):
		BadRequest(w, "Employee is already active", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyExists):
		Conflict(w, "Attendance record already exists for this date")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		BadRequest(w, "Already clocked in today", nil)
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Must clock in first", nil)
	case errors.Is(err, attendance.ErrClockOutWithoutIn):
		BadRequest(w, "Cannot set clock out without clock in time", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must be after start date", nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Period and schedule domain errors
	case errors.Is(err, period.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, period.ErrPeriodExists):
		Conflict(w, "Payroll period already exists for this month")
	case errors.Is(err, period.ErrInvalidTransition):
		BadRequest(w, "Invalid period status transition", nil)
	case errors.Is(err, period.ErrPeriodNotOpen):
		BadRequest(w, "Payroll period is not open", nil)
	case errors.Is(err, period.ErrPeriodClosed):
		BadRequest(w, "Payroll period is closed", nil)
	case errors.Is(err, period.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, period.ErrScheduleExists):
		Conflict(w, "Work schedule already exists for this employee and period")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Month and year are required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
