package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Department Department
	Position   string
	Salary     decimal.Decimal
	JoinDate   time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentDesign      Department = "Design"
	DepartmentMarketing   Department = "Marketing"
	DepartmentHR          Department = "HR"
	DepartmentSales       Department = "Sales"

	// DepartmentGeneral is the placeholder assigned at self-registration.
	// It is not offered to admins, so it stays out of DepartmentValues.
	DepartmentGeneral Department = "General"
)

var DepartmentValues = []string{
	string(DepartmentEngineering),
	string(DepartmentDesign),
	string(DepartmentMarketing),
	string(DepartmentHR),
	string(DepartmentSales),
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusOnLeave  Status = "On Leave"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusActive),
	string(StatusInactive),
	string(StatusOnLeave),
}
