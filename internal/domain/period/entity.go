package period

import (
	"fmt"
	"time"
)

// PayrollPeriod is a bi-monthly cutoff window: the 1st-15th or the 16th to
// the end of the month. Unique per (period_type, month, year).
type PayrollPeriod struct {
	ID        int64
	Type      PeriodType
	StartDate time.Time
	EndDate   time.Time
	Month     int
	Year      int
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PeriodType string

const (
	TypeFirstHalf  PeriodType = "first_half"
	TypeSecondHalf PeriodType = "second_half"
)

var TypeValues = []string{
	string(TypeFirstHalf),
	string(TypeSecondHalf),
}

func (t PeriodType) Label() string {
	if t == TypeFirstHalf {
		return "1st-15th"
	}
	return "16th-End of Month"
}

type Status string

const (
	StatusOpen       Status = "Open"
	StatusProcessing Status = "Processing"
	StatusClosed     Status = "Closed"
)

var StatusValues = []string{
	string(StatusOpen),
	string(StatusProcessing),
	string(StatusClosed),
}

// CanTransitionTo enforces the Open -> Processing -> Closed lifecycle.
// Closed is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusOpen:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusClosed
	default:
		return false
	}
}

// Name formats the period like "January 2026 (1st-15th)".
func (p PayrollPeriod) Name() string {
	monthName := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Month().String()
	return fmt.Sprintf("%s %d (%s)", monthName, p.Year, p.Type.Label())
}

// DaysCount counts calendar days in the period, inclusive.
func (p PayrollPeriod) DaysCount() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// Bounds returns the calendar window for a period type within a month.
func Bounds(periodType PeriodType, year, month int) (start, end time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if periodType == TypeFirstHalf {
		return first, first.AddDate(0, 0, 14)
	}
	return first.AddDate(0, 0, 15), first.AddDate(0, 1, -1)
}

// WorkSchedule assigns expected work days and rest days to one employee for
// one payroll period. Unique per (employee, period). Dates are calendar-day
// strings in YYYY-MM-DD form.
type WorkSchedule struct {
	ID         int64
	EmployeeID int64
	PeriodID   int64
	WorkDays   []string
	RestDays   []string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	PeriodName   *string
}

func (w WorkSchedule) TotalWorkDays() int {
	return len(w.WorkDays)
}

func (w WorkSchedule) TotalRestDays() int {
	return len(w.RestDays)
}
