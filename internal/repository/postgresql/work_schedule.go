package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hr-backend-go/internal/domain/period"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) period.ScheduleRepository {
	return &scheduleRepository{db: db}
}

const scheduleColumns = `w.id, w.employee_id, w.period_id, w.work_days, w.rest_days, w.notes, w.created_at, w.updated_at`

func scanSchedule(row pgx.Row) (period.WorkSchedule, error) {
	var ws period.WorkSchedule
	err := row.Scan(
		&ws.ID, &ws.EmployeeID, &ws.PeriodID, &ws.WorkDays, &ws.RestDays,
		&ws.Notes, &ws.CreatedAt, &ws.UpdatedAt,
	)
	return ws, err
}

func (r *scheduleRepository) Create(ctx context.Context, ws period.WorkSchedule) (period.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules AS w (employee_id, period_id, work_days, rest_days, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + scheduleColumns

	created, err := scanSchedule(q.QueryRow(ctx, query,
		ws.EmployeeID, ws.PeriodID, ws.WorkDays, ws.RestDays, ws.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_schedule_employee_period") {
			return period.WorkSchedule{}, period.ErrScheduleExists
		}
		return period.WorkSchedule{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return created, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id int64) (period.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			p.period_type, p.month, p.year
		FROM work_schedules w
		JOIN employees e ON w.employee_id = e.id
		JOIN payroll_periods p ON w.period_id = p.id
		WHERE w.id = $1
	`

	var ws period.WorkSchedule
	var employeeName string
	var p period.PayrollPeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&ws.ID, &ws.EmployeeID, &ws.PeriodID, &ws.WorkDays, &ws.RestDays,
		&ws.Notes, &ws.CreatedAt, &ws.UpdatedAt,
		&employeeName, &p.Type, &p.Month, &p.Year,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.WorkSchedule{}, period.ErrScheduleNotFound
		}
		return period.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	periodName := p.Name()
	ws.EmployeeName = &employeeName
	ws.PeriodName = &periodName

	return ws, nil
}

func (r *scheduleRepository) List(ctx context.Context, filter period.ScheduleFilter) ([]period.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + scheduleColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			p.period_type, p.month, p.year
		FROM work_schedules w
		JOIN employees e ON w.employee_id = e.id
		JOIN payroll_periods p ON w.period_id = p.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND w.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PeriodID != nil {
		query += fmt.Sprintf(" AND w.period_id = $%d", argIdx)
		args = append(args, *filter.PeriodID)
		argIdx++
	}
	query += " ORDER BY w.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []period.WorkSchedule
	for rows.Next() {
		var ws period.WorkSchedule
		var employeeName string
		var p period.PayrollPeriod
		if err := rows.Scan(
			&ws.ID, &ws.EmployeeID, &ws.PeriodID, &ws.WorkDays, &ws.RestDays,
			&ws.Notes, &ws.CreatedAt, &ws.UpdatedAt,
			&employeeName, &p.Type, &p.Month, &p.Year,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		periodName := p.Name()
		ws.EmployeeName = &employeeName
		ws.PeriodName = &periodName
		schedules = append(schedules, ws)
	}

	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, req period.UpdateScheduleRequest) (period.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.WorkDays != nil {
		setParts = append(setParts, fmt.Sprintf("work_days = $%d", argIdx))
		args = append(args, *req.WorkDays)
		argIdx++
	}
	if req.RestDays != nil {
		setParts = append(setParts, fmt.Sprintf("rest_days = $%d", argIdx))
		args = append(args, *req.RestDays)
		argIdx++
	}
	if req.Notes != nil {
		setParts = append(setParts, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *req.Notes)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE work_schedules AS w
		SET %s
		WHERE id = $1
		RETURNING `+scheduleColumns, strings.Join(setParts, ", "))

	ws, err := scanSchedule(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.WorkSchedule{}, period.ErrScheduleNotFound
		}
		return period.WorkSchedule{}, fmt.Errorf("failed to update work schedule: %w", err)
	}

	return ws, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM work_schedules WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}

	return nil
}
