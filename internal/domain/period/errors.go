package period

import "errors"

var (
	ErrPeriodNotFound      = errors.New("payroll period not found")
	ErrPeriodExists        = errors.New("payroll period already exists for this type and month")
	ErrInvalidTransition   = errors.New("invalid period status transition")
	ErrPeriodNotOpen       = errors.New("payroll period is not open for schedule changes")
	ErrPeriodClosed        = errors.New("payroll period is closed")
	ErrScheduleNotFound    = errors.New("work schedule not found")
	ErrScheduleExists      = errors.New("work schedule already exists for this employee and period")
	ErrInvalidPeriodType   = errors.New("invalid period type")
	ErrInvalidPeriodStatus = errors.New("invalid period status")
)
