package auth

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
