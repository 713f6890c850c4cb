package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave request not found")
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidLeaveType = errors.New("invalid leave type")
)
