package leave

import (
	"time"

	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID int64  `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int    `json:"days,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// Validate rejects a reversed date range before the days auto-computation
// ever runs.
func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.LeaveType, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of Vacation, Sick Leave, Personal, Work From Home, Unpaid"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be after start date"})
	}
	if r.Days < 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "days must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveRequest struct {
	ID        int64   `json:"-"`
	LeaveType *string `json:"leave_type,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Days      *int    `json:"days,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType != nil && !validator.IsInSlice(*r.LeaveType, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of Vacation, Sick Leave, Personal, Work From Home, Unpaid"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveFilter struct {
	Status     *string
	EmployeeID *int64
}

type LeaveResponse struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	LeaveType    string    `json:"leave_type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Days         int       `json:"days"`
	Status       string    `json:"status"`
	Reason       string    `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type StatsResponse struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
	Rejected int64 `json:"rejected"`
}
