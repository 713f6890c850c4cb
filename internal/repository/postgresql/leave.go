package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hr-backend-go/internal/domain/leave"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
	"github.com/peoplecore/hr-backend-go/internal/pkg/validator"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.days, l.status, l.reason, l.created_at, l.updated_at`

func (r *leaveRepository) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves AS l (employee_id, leave_type, start_date, end_date, days, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveColumns

	var created leave.Leave
	err := q.QueryRow(ctx, query,
		lv.EmployeeID, lv.Type, lv.StartDate, lv.EndDate, lv.Days, lv.Status, lv.Reason,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Type, &created.StartDate, &created.EndDate,
		&created.Days, &created.Status, &created.Reason, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.first_name || ' ' || e.last_name AS employee_name
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE l.id = $1
	`

	var lv leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&lv.ID, &lv.EmployeeID, &lv.Type, &lv.StartDate, &lv.EndDate,
		&lv.Days, &lv.Status, &lv.Reason, &lv.CreatedAt, &lv.UpdatedAt, &lv.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lv, nil
}

func (r *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.first_name || ' ' || e.last_name AS employee_name
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	query += " ORDER BY l.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var lv leave.Leave
		if err := rows.Scan(
			&lv.ID, &lv.EmployeeID, &lv.Type, &lv.StartDate, &lv.EndDate,
			&lv.Days, &lv.Status, &lv.Reason, &lv.CreatedAt, &lv.UpdatedAt, &lv.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, lv)
	}

	return leaves, nil
}

func (r *leaveRepository) Update(ctx context.Context, req leave.UpdateLeaveRequest) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.LeaveType != nil {
		setParts = append(setParts, fmt.Sprintf("leave_type = $%d", argIdx))
		args = append(args, *req.LeaveType)
		argIdx++
	}
	if req.StartDate != nil {
		start, _ := validator.IsValidDate(*req.StartDate)
		setParts = append(setParts, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, start)
		argIdx++
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		setParts = append(setParts, fmt.Sprintf("end_date = $%d", argIdx))
		args = append(args, end)
		argIdx++
	}
	if req.Days != nil {
		setParts = append(setParts, fmt.Sprintf("days = $%d", argIdx))
		args = append(args, *req.Days)
		argIdx++
	}
	if req.Reason != nil {
		setParts = append(setParts, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE leaves AS l
		SET %s
		WHERE id = $1
		RETURNING `+leaveColumns, strings.Join(setParts, ", "))

	var lv leave.Leave
	err := q.QueryRow(ctx, query, args...).Scan(
		&lv.ID, &lv.EmployeeID, &lv.Type, &lv.StartDate, &lv.EndDate,
		&lv.Days, &lv.Status, &lv.Reason, &lv.CreatedAt, &lv.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return lv, nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id int64, status leave.Status) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves AS l
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leaveColumns

	var lv leave.Leave
	err := q.QueryRow(ctx, query, id, status).Scan(
		&lv.ID, &lv.EmployeeID, &lv.Type, &lv.StartDate, &lv.EndDate,
		&lv.Days, &lv.Status, &lv.Reason, &lv.CreatedAt, &lv.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	return lv, nil
}

func (r *leaveRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM leaves WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	return nil
}

func (r *leaveRepository) Stats(ctx context.Context) (leave.StatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var stats leave.StatsResponse
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Approved'),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Rejected')
		FROM leaves
	`).Scan(&stats.Total, &stats.Approved, &stats.Pending, &stats.Rejected)
	if err != nil {
		return leave.StatsResponse{}, fmt.Errorf("failed to get leave stats: %w", err)
	}

	return stats, nil
}
