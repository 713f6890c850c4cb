package attendance

import (
	"time"

	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
	Notes      string  `json:"notes,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Present, Absent, Late, Half Day, On Leave"})
	}
	if r.ClockIn != nil {
		if _, ok := parseClock(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be in HH:MM or HH:MM:SS format"})
		}
	}
	if r.ClockOut != nil {
		if _, ok := parseClock(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must be in HH:MM or HH:MM:SS format"})
		}
		if r.ClockIn == nil {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "cannot set clock out without clock in time"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       int64   `json:"-"`
	Status   *string `json:"status,omitempty"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Present, Absent, Late, Half Day, On Leave"})
	}
	if r.ClockIn != nil {
		if _, ok := parseClock(*r.ClockIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be in HH:MM or HH:MM:SS format"})
		}
	}
	if r.ClockOut != nil {
		if _, ok := parseClock(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must be in HH:MM or HH:MM:SS format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockRequest struct {
	EmployeeID int64  `json:"employee_id"`
	ClockType  string `json:"clock_type"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.ClockType != "in" && r.ClockType != "out" {
		errs = append(errs, validator.ValidationError{Field: "clock_type", Message: "clock_type must be 'in' or 'out'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	Date       *string
	EmployeeID *int64
	StartDate  *string
	EndDate    *string
}

type AttendanceResponse struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	ClockIn      *string   `json:"clock_in"`
	ClockOut     *string   `json:"clock_out"`
	WorkingHours float64   `json:"working_hours"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type DailyStatsResponse struct {
	Date           string  `json:"date"`
	TotalEmployees int64   `json:"total_employees"`
	Present        int64   `json:"present"`
	Absent         int64   `json:"absent"`
	OnLeave        int64   `json:"on_leave"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// parseClock accepts "15:04" and "15:04:05" time-of-day strings.
func parseClock(s string) (time.Time, bool) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ParseClock is the exported form used by services when mapping requests.
func ParseClock(s string) (time.Time, bool) {
	return parseClock(s)
}
