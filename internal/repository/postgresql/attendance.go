package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hr-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.status, a.clock_in, a.clock_out, a.notes, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.ClockIn, &a.ClockOut,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records AS a (employee_id, date, status, clock_in, clock_out, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.Status, att.ClockIn, att.ClockOut, att.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_employee_date") {
			return attendance.Attendance{}, attendance.ErrAlreadyExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.first_name || ' ' || e.last_name AS employee_name
		FROM attendance_records a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.id = $1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.ClockIn, &a.ClockOut,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt, &a.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records a WHERE a.employee_id = $1 AND a.date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.first_name || ' ' || e.last_name AS employee_name
		FROM attendance_records a
		JOIN employees e ON a.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Date != nil {
		query += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query += fmt.Sprintf(" AND a.date BETWEEN $%d AND $%d", argIdx, argIdx+1)
		args = append(args, *filter.StartDate, *filter.EndDate)
		argIdx += 2
	}
	query += " ORDER BY a.date DESC, a.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.ClockIn, &a.ClockOut,
			&a.Notes, &a.CreatedAt, &a.UpdatedAt, &a.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, nil
}

func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID int64, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	return records, nil
}

func (r *attendanceRepository) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.ClockIn != nil {
		if t, ok := attendance.ParseClock(*req.ClockIn); ok {
			setParts = append(setParts, fmt.Sprintf("clock_in = $%d", argIdx))
			args = append(args, t)
			argIdx++
		}
	}
	if req.ClockOut != nil {
		if t, ok := attendance.ParseClock(*req.ClockOut); ok {
			setParts = append(setParts, fmt.Sprintf("clock_out = $%d", argIdx))
			args = append(args, t)
			argIdx++
		}
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE attendance_records AS a
		SET %s
		WHERE id = $1
		RETURNING `+attendanceColumns, strings.Join(setParts, ", "))

	a, err := scanAttendance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) SetClocks(ctx context.Context, id int64, status attendance.Status, clockIn, clockOut *time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records AS a
		SET status = $2, clock_in = $3, clock_out = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, id, status, clockIn, clockOut))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set clock times: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM attendance_records WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}

func (r *attendanceRepository) DailyStats(ctx context.Context, date time.Time) (attendance.DailyStatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var stats attendance.DailyStatsResponse
	err := q.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE status = 'Active'),
			COUNT(*) FILTER (WHERE a.status IN ('Present', 'Late')),
			COUNT(*) FILTER (WHERE a.status = 'On Leave')
		FROM attendance_records a
		WHERE a.date = $1
	`, date).Scan(&stats.TotalEmployees, &stats.Present, &stats.OnLeave)
	if err != nil {
		return attendance.DailyStatsResponse{}, fmt.Errorf("failed to get daily attendance stats: %w", err)
	}

	stats.Date = date.Format("2006-01-02")
	stats.Absent = stats.TotalEmployees - stats.Present
	if stats.TotalEmployees > 0 {
		stats.AttendanceRate = float64(stats.Present) / float64(stats.TotalEmployees) * 100
		stats.AttendanceRate = float64(int(stats.AttendanceRate*100+0.5)) / 100
	}

	return stats, nil
}
