package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollAlreadyExists = errors.New("payroll record already exists for this employee in this month/year")
	ErrInvalidPeriod        = errors.New("month and year are required")
	ErrInvalidStatus        = errors.New("invalid payroll status")
)
