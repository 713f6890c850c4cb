package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hr-backend-go/internal/domain/period"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) period.PeriodRepository {
	return &periodRepository{db: db}
}

const periodColumns = `p.id, p.period_type, p.start_date, p.end_date, p.month, p.year, p.status, p.created_at, p.updated_at`

func scanPeriod(row pgx.Row) (period.PayrollPeriod, error) {
	var p period.PayrollPeriod
	err := row.Scan(
		&p.ID, &p.Type, &p.StartDate, &p.EndDate, &p.Month, &p.Year,
		&p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *periodRepository) Create(ctx context.Context, p period.PayrollPeriod) (period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods AS p (period_type, start_date, end_date, month, year, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + periodColumns

	created, err := scanPeriod(q.QueryRow(ctx, query,
		p.Type, p.StartDate, p.EndDate, p.Month, p.Year, p.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_period_type_month_year") {
			return period.PayrollPeriod{}, period.ErrPeriodExists
		}
		return period.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return created, nil
}

func (r *periodRepository) GetByID(ctx context.Context, id int64) (period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPeriod(q.QueryRow(ctx, `
		SELECT `+periodColumns+`
		FROM payroll_periods p
		WHERE p.id = $1
	`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.PayrollPeriod{}, period.ErrPeriodNotFound
		}
		return period.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) List(ctx context.Context, filter period.PeriodFilter) ([]period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + periodColumns + `
		FROM payroll_periods p
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	query += " ORDER BY p.year DESC, p.month DESC, p.start_date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []period.PayrollPeriod
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}

func (r *periodRepository) UpdateStatus(ctx context.Context, id int64, status period.Status) (period.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPeriod(q.QueryRow(ctx, `
		UPDATE payroll_periods AS p
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+periodColumns, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.PayrollPeriod{}, period.ErrPeriodNotFound
		}
		return period.PayrollPeriod{}, fmt.Errorf("failed to update period status: %w", err)
	}

	return p, nil
}

func (r *periodRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM payroll_periods WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return period.ErrPeriodNotFound
		}
		return fmt.Errorf("failed to delete payroll period: %w", err)
	}

	return nil
}

func (r *periodRepository) HasClosedForMonth(ctx context.Context, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var closed bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM payroll_periods
			WHERE month = $1 AND year = $2 AND status = 'Closed'
		)
	`, month, year).Scan(&closed)
	if err != nil {
		return false, fmt.Errorf("failed to check closed periods: %w", err)
	}

	return closed, nil
}
