package usecase

import (
	jwtpkg "github.com/piresc/jumbaa/internal/pkg/jwt"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/services/users"
	"golang.org/x/crypto/bcrypt"
)

type UserUC struct {
	userRepo    users.UserRepo
	userGW      users.UserGW
	revocations jwtpkg.RevocationStore
	cfg         *models.Config
	hashCost    int
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	userRepo users.UserRepo,
	userGW users.UserGW,
	revocations jwtpkg.RevocationStore,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo:    userRepo,
		userGW:      userGW,
		revocations: revocations,
		cfg:         cfg,
		hashCost:    bcrypt.DefaultCost,
	}
}
