package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Register creates the user account together with a Pending employee
	// profile in one transaction.
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	// Logout revokes the presented access token; later requests carrying it
	// are rejected.
	Logout(ctx context.Context, token string) error

	CurrentUser(ctx context.Context, userID int64) (UserResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
