package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hr-backend-go/internal/domain/auth"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `u.id, u.username, u.email, u.password_hash, u.role, u.employee_id, u.created_at, u.updated_at`

func scanUser(row pgx.Row) (auth.User, error) {
	var u auth.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.EmployeeID, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *userRepository) Create(ctx context.Context, user auth.User) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users AS u (username, email, password_hash, role, employee_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	created, err := scanUser(q.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role, user.EmployeeID,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_user_username") {
			return auth.User{}, auth.ErrUsernameExists
		}
		if strings.Contains(err.Error(), "uk_user_email") {
			return auth.User{}, auth.ErrEmailExists
		}
		return auth.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		WHERE u.id = $1
	`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		WHERE u.username = $1
	`, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	var updatedID int64
	err := q.QueryRow(ctx, `
		UPDATE users SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`, id, passwordHash).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
