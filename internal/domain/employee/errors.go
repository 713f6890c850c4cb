package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmailExists       = errors.New("employee with this email already exists")
	ErrInvalidDepartment = errors.New("invalid department")
	ErrInvalidStatus     = errors.New("invalid employee status")
	ErrNegativeSalary    = errors.New("salary must not be negative")
	ErrAlreadyActive     = errors.New("employee is already active")
)
