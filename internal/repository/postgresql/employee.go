package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, first_name, last_name, email, department, position, salary, join_date, status, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Department, &e.Position,
		&e.Salary, &e.JoinDate, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (first_name, last_name, email, department, position, salary, join_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Email, emp.Department, emp.Position,
		emp.Salary, emp.JoinDate, emp.Status,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Department != nil {
		query += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil {
		query += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	status := string(employee.StatusActive)
	return r.List(ctx, employee.EmployeeFilter{Status: &status})
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FirstName != nil {
		setParts = append(setParts, fmt.Sprintf("first_name = $%d", argIdx))
		args = append(args, *req.FirstName)
		argIdx++
	}
	if req.LastName != nil {
		setParts = append(setParts, fmt.Sprintf("last_name = $%d", argIdx))
		args = append(args, *req.LastName)
		argIdx++
	}
	if req.Email != nil {
		setParts = append(setParts, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Department != nil {
		setParts = append(setParts, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *req.Department)
		argIdx++
	}
	if req.Position != nil {
		setParts = append(setParts, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *req.Position)
		argIdx++
	}
	if req.Salary != nil {
		setParts = append(setParts, fmt.Sprintf("salary = $%d", argIdx))
		args = append(args, *req.Salary)
		argIdx++
	}
	if req.JoinDate != nil {
		setParts = append(setParts, fmt.Sprintf("join_date = $%d", argIdx))
		args = append(args, *req.JoinDate)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING `+employeeColumns, strings.Join(setParts, ", "))

	e, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if strings.Contains(err.Error(), "uk_employee_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) UpdateStatus(ctx context.Context, id int64, status employee.Status) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee status: %w", err)
	}

	return e, nil
}

// Delete removes the employee and every dependent row in one transaction.
// The cascade is explicit application code, not a database-level rule.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		dependents := []string{
			`DELETE FROM attendance_records WHERE employee_id = $1`,
			`DELETE FROM leaves WHERE employee_id = $1`,
			`DELETE FROM payroll_records WHERE employee_id = $1`,
			`DELETE FROM work_schedules WHERE employee_id = $1`,
		}
		for _, stmt := range dependents {
			if _, err := tx.Exec(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to delete employee dependents: %w", err)
			}
		}

		var deletedID int64
		err := tx.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return nil
	})
}

func (r *employeeRepository) Stats(ctx context.Context) (employee.StatsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var stats employee.StatsResponse
	err := q.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Active'),
			COUNT(*) FILTER (WHERE status = 'Pending')
		FROM employees
	`).Scan(&stats.Total, &stats.Active, &stats.Pending)
	if err != nil {
		return employee.StatsResponse{}, fmt.Errorf("failed to get employee stats: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY department
	`)
	if err != nil {
		return employee.StatsResponse{}, fmt.Errorf("failed to get department counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dc employee.DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return employee.StatsResponse{}, fmt.Errorf("failed to scan department count: %w", err)
		}
		stats.ByDepartment = append(stats.ByDepartment, dc)
	}

	return stats, nil
}
