package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary"`
	JoinDate   string          `json:"join_date"`
	Status     *string         `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if !validator.IsInSlice(r.Department, DepartmentValues) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be one of Engineering, Design, Marketing, HR, Sales"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Pending, Active, Inactive, On Leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         int64            `json:"-"`
	FirstName  *string          `json:"first_name,omitempty"`
	LastName   *string          `json:"last_name,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Department *string          `json:"department,omitempty"`
	Position   *string          `json:"position,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	JoinDate   *string          `json:"join_date,omitempty"`
	Status     *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Department != nil && !validator.IsInSlice(*r.Department, DepartmentValues) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be one of Engineering, Design, Marketing, HR, Sales"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of Pending, Active, Inactive, On Leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Department *string
	Status     *string
	Search     *string
}

type EmployeeResponse struct {
	ID         int64           `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Department string          `json:"department"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary"`
	JoinDate   string          `json:"join_date"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type StatsResponse struct {
	Total        int64             `json:"total"`
	Active       int64             `json:"active"`
	Pending      int64             `json:"pending"`
	ByDepartment []DepartmentCount `json:"by_department"`
}
