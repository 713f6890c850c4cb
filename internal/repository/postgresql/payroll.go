package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hr-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `pr.id, pr.employee_id, pr.month, pr.year, pr.basic_salary, pr.allowances, pr.overtime, pr.deductions, pr.net_salary, pr.status, pr.processed_date, pr.created_at, pr.updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year,
		&p.BasicSalary, &p.Allowances, &p.Overtime, &p.Deductions, &p.NetSalary,
		&p.Status, &p.ProcessedDate, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payrollRepository) Create(ctx context.Context, rec payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records AS pr
			(employee_id, month, year, basic_salary, allowances, overtime, deductions, net_salary, status, processed_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Month, rec.Year,
		rec.BasicSalary, rec.Allowances, rec.Overtime, rec.Deductions, rec.NetSalary,
		rec.Status, rec.ProcessedDate,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name,
			e.email, e.department, e.position
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1
	`

	var p payroll.Payroll
	var name, email, department, position string
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year,
		&p.BasicSalary, &p.Allowances, &p.Overtime, &p.Deductions, &p.NetSalary,
		&p.Status, &p.ProcessedDate, &p.CreatedAt, &p.UpdatedAt,
		&name, &email, &department, &position,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	p.EmployeeName = &name
	p.EmployeeEmail = &email
	p.Department = &department
	p.Position = &position

	return p, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID int64, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayroll(q.QueryRow(ctx, `
		SELECT `+payrollColumns+`
		FROM payroll_records pr
		WHERE pr.employee_id = $1 AND pr.month = $2 AND pr.year = $3
	`, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND pr.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(" AND pr.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	query += " ORDER BY pr.year DESC, pr.month DESC, employee_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		var name string
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year,
			&p.BasicSalary, &p.Allowances, &p.Overtime, &p.Deductions, &p.NetSalary,
			&p.Status, &p.ProcessedDate, &p.CreatedAt, &p.UpdatedAt,
			&name,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		p.EmployeeName = &name
		records = append(records, p)
	}

	return records, nil
}

func (r *payrollRepository) Update(ctx context.Context, rec payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records AS pr
		SET allowances = $2,
			overtime = $3,
			deductions = $4,
			net_salary = $5,
			status = $6,
			processed_date = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + payrollColumns

	updated, err := scanPayroll(q.QueryRow(ctx, query,
		rec.ID, rec.Allowances, rec.Overtime, rec.Deductions, rec.NetSalary,
		rec.Status, rec.ProcessedDate,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return updated, nil
}

func (r *payrollRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM payroll_records WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	return nil
}

func (r *payrollRepository) Stats(ctx context.Context, month, year int) (payroll.StatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	stats := payroll.StatsResponse{Month: month, Year: year}
	err := q.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(net_salary), 0),
			COUNT(*) FILTER (WHERE status = 'Processed'),
			COUNT(*) FILTER (WHERE status = 'Pending')
		FROM payroll_records
		WHERE month = $1 AND year = $2
	`, month, year).Scan(&stats.TotalPayroll, &stats.ProcessedCount, &stats.PendingCount)
	if err != nil {
		return payroll.StatsResponse{}, fmt.Errorf("failed to get payroll stats: %w", err)
	}

	return stats, nil
}
