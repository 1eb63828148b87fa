package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// UserRepo implements users.UserRepo on Postgres
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}
