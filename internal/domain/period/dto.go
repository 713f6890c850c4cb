package period

import (
	"time"

	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	PeriodType string  `json:"period_type"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.PeriodType, TypeValues) {
		errs = append(errs, validator.ValidationError{Field: "period_type", Message: "period_type must be 'first_half' or 'second_half'"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be 2000 or later"})
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

type UpdatePeriodStatusRequest struct {
	ID     int64  `json:"-"`
	Status string `json:"status"`
}

func (r *UpdatePeriodStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Open, Processing, Closed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodFilter struct {
	Month  *int
	Year   *int
	Status *string
}

type PeriodResponse struct {
	ID         int64     `json:"id"`
	PeriodType string    `json:"period_type"`
	PeriodName string    `json:"period_name"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	Status     string    `json:"status"`
	DaysCount  int       `json:"days_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateScheduleRequest struct {
	EmployeeID int64    `json:"employee_id"`
	PeriodID   int64    `json:"payroll_period"`
	WorkDays   []string `json:"work_days"`
	RestDays   []string `json:"rest_days"`
	Notes      string   `json:"notes,omitempty"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.PeriodID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "payroll_period", Message: "payroll_period is required"})
	}
	for _, day := range r.WorkDays {
		if _, ok := validator.IsValidDate(day); !ok {
			errs = append(errs, validator.ValidationError{Field: "work_days", Message: "work_days must contain YYYY-MM-DD dates"})
			break
		}
	}
	for _, day := range r.RestDays {
		if _, ok := validator.IsValidDate(day); !ok {
			errs = append(errs, validator.ValidationError{Field: "rest_days", Message: "rest_days must contain YYYY-MM-DD dates"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateScheduleRequest struct {
	ID       int64     `json:"-"`
	WorkDays *[]string `json:"work_days,omitempty"`
	RestDays *[]string `json:"rest_days,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkDays != nil {
		for _, day := range *r.WorkDays {
			if _, ok := validator.IsValidDate(day); !ok {
				errs = append(errs, validator.ValidationError{Field: "work_days", Message: "work_days must contain YYYY-MM-DD dates"})
				break
			}
		}
	}
	if r.RestDays != nil {
		for _, day := range *r.RestDays {
			if _, ok := validator.IsValidDate(day); !ok {
				errs = append(errs, validator.ValidationError{Field: "rest_days", Message: "rest_days must contain YYYY-MM-DD dates"})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleFilter struct {
	EmployeeID *int64
	PeriodID   *int64
}

type ScheduleResponse struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employee_id"`
	EmployeeName  string    `json:"employee_name,omitempty"`
	PeriodID      int64     `json:"payroll_period"`
	PeriodName    string    `json:"period_name,omitempty"`
	WorkDays      []string  `json:"work_days"`
	RestDays      []string  `json:"rest_days"`
	TotalWorkDays int       `json:"total_work_days"`
	TotalRestDays int       `json:"total_rest_days"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
