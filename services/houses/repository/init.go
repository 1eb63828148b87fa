package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/piresc/jumbaa/internal/pkg/database"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// HouseRepo implements houses.HouseRepo on Postgres with a Redis snapshot cache
type HouseRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewHouseRepo creates a new house repository instance. A nil redisClient
// disables the snapshot cache.
func NewHouseRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *HouseRepo {
	return &HouseRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
