package houses

import (
	"context"

	"github.com/piresc/jumbaa/internal/pkg/geo"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/jumbaa/services/houses HouseUC

// HouseUC represents the listings usecase interface
type HouseUC interface {
	// handle listings
	CreateHouse(ctx context.Context, ownerID string, req *models.CreateHouseRequest) (*models.House, error)
	GetHouse(ctx context.Context, id string, session models.Session) (*models.HouseDetail, error)
	ListHouses(ctx context.Context, filter models.HouseFilter) ([]*models.House, error)

	// handle proximity
	Feed(ctx context.Context, filter models.HouseFilter, ref *geo.Point) (*models.Feed, error)
	Nearby(ctx context.Context, ref geo.Point, sortByDistance bool) ([]*models.NearbyHouse, error)

	// handle favorites
	AddFavorite(ctx context.Context, userID, houseID string) error
	RemoveFavorite(ctx context.Context, userID, houseID string) error
	ListFavorites(ctx context.Context, userID string) ([]*models.House, error)
	PurgeUserFavorites(ctx context.Context, userID string) error
}
