package users

import (
	"context"

	"github.com/piresc/jumbaa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/jumbaa/services/users UserRepo

// UserRepo defines the user repository interface
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}
