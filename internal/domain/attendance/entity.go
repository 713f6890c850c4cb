package attendance

import (
	"math"
	"time"
)

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     Status
	ClockIn    *time.Time
	ClockOut   *time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
	StatusOnLeave Status = "On Leave"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusOnLeave),
}

// WorkingHours returns the elapsed hours between clock-in and clock-out on
// the attendance date, rounded to 2 decimals. A clock-out whose time of day
// is earlier than the clock-in means an overnight shift and counts into the
// next calendar day. Zero when either clock time is missing.
func (a Attendance) WorkingHours() float64 {
	if a.ClockIn == nil || a.ClockOut == nil {
		return 0
	}

	in := combine(a.Date, *a.ClockIn)
	out := combine(a.Date, *a.ClockOut)
	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}

	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100
}

func combine(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0,
		time.UTC,
	)
}

// MonthlySummary aggregates a month of attendance for payroll.
type MonthlySummary struct {
	PresentDays   int
	OvertimeHours float64
}

const regularShiftHours = 8

// Summarize derives the payroll figures from a month of attendance records.
// Present and Late both count as worked days; every hour past the regular
// 8-hour shift accrues as overtime. An empty month is a valid zero summary.
func Summarize(records []Attendance) MonthlySummary {
	var s MonthlySummary
	for _, rec := range records {
		if rec.Status == StatusPresent || rec.Status == StatusLate {
			s.PresentDays++
		}
		if wh := rec.WorkingHours(); wh > regularShiftHours {
			s.OvertimeHours += wh - regularShiftHours
		}
	}
	return s
}

// MonthRange returns the first and last calendar day of the given month.
func MonthRange(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
