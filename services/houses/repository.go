package houses

import (
	"context"

	"github.com/piresc/jumbaa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/jumbaa/services/houses HouseRepo

// HouseRepo defines the listings repository interface
type HouseRepo interface {
	// Listings. ListHouses returns the full snapshot, newest first.
	CreateHouse(ctx context.Context, house *models.House) error
	GetHouseByID(ctx context.Context, id string) (*models.House, error)
	ListHouses(ctx context.Context) ([]*models.House, error)

	// Favorites
	AddFavorite(ctx context.Context, userID, houseID string) error
	RemoveFavorite(ctx context.Context, userID, houseID string) error
	IsFavorite(ctx context.Context, userID, houseID string) (bool, error)
	ListFavorites(ctx context.Context, userID string) ([]*models.House, error)
	DeleteFavoritesByUser(ctx context.Context, userID string) (int64, error)
}
