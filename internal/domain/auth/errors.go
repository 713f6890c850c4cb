package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already taken")
	ErrEmailExists        = errors.New("email already registered")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrAdminRequired      = errors.New("admin privilege required")
)
