package users

import (
	"context"

	"github.com/piresc/jumbaa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/jumbaa/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// handle auth
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, session models.Session) error

	// handle profile
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.ProfileUpdateRequest) (*models.User, error)
	DeleteAccount(ctx context.Context, session models.Session) error
}
