package leave

import "time"

type Leave struct {
	ID         int64
	EmployeeID int64
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Status     Status
	Reason     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

type LeaveType string

const (
	TypeVacation     LeaveType = "Vacation"
	TypeSickLeave    LeaveType = "Sick Leave"
	TypePersonal     LeaveType = "Personal"
	TypeWorkFromHome LeaveType = "Work From Home"
	TypeUnpaid       LeaveType = "Unpaid"
)

var TypeValues = []string{
	string(TypeVacation),
	string(TypeSickLeave),
	string(TypePersonal),
	string(TypeWorkFromHome),
	string(TypeUnpaid),
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// DaysBetween counts calendar days in [start, end] inclusive.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
