package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyExists      = errors.New("attendance record already exists for this employee on this date")
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrNotClockedIn       = errors.New("must clock in first")
	ErrClockOutWithoutIn  = errors.New("cannot set clock out without clock in time")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
