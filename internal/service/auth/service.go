package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore/hr-backend-go/internal/domain/auth"
	"github.com/peoplecore/hr-backend-go/internal/domain/employee"
	"github.com/peoplecore/hr-backend-go/internal/pkg/database"
	"github.com/peoplecore/hr-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hr-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     auth.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo auth.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

func mapUserToResponse(user auth.User) auth.UserResponse {
	return auth.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Role:       string(user.Role),
		EmployeeID: user.EmployeeID,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.EmployeeID, user.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	refreshToken, _, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         mapUserToResponse(user),
	}, nil
}

// Register creates the user account together with a Pending employee
// profile in one transaction. The profile carries placeholder department
// and position values until an admin completes the setup and activates it.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, err
	}

	var created auth.User
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context, tx pgx.Tx) error {
		emp, err := s.employeeRepo.Create(ctx, employee.Employee{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Department: employee.DepartmentGeneral,
			Position:   "Employee",
			Salary:     decimal.Zero,
			JoinDate:   time.Now().UTC(),
			Status:     employee.StatusPending,
		})
		if err != nil {
			return err
		}

		created, err = s.userRepo.Create(ctx, auth.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         auth.RoleEmployee,
			EmployeeID:   &emp.ID,
		})
		return err
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return mapUserToResponse(created), nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(token)
	return nil
}

func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID int64) (auth.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.UserResponse{}, err
	}
	return mapUserToResponse(user), nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, req.UserID, string(hash))
}
