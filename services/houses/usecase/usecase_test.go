package usecase

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/services/houses/mocks"
)

type testDeps struct {
	repo *mocks.MockHouseRepo
	gw   *mocks.MockHouseGW
}

func newTestUC(t *testing.T) (*HouseUC, testDeps) {
	ctrl := gomock.NewController(t)

	deps := testDeps{
		repo: mocks.NewMockHouseRepo(ctrl),
		gw:   mocks.NewMockHouseGW(ctrl),
	}

	cfg := &models.Config{
		Listings: models.ListingsConfig{NearbyRadiusKm: 10},
	}

	return NewHouseUC(deps.repo, deps.gw, cfg), deps
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func house(name, location string, bedrooms int, lat, lon *float64) *models.House {
	return &models.House{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      name,
		Location:  location,
		Price:     30000,
		Bedrooms:  bedrooms,
		Latitude:  lat,
		Longitude: lon,
	}
}

func names(houses []*models.House) []string {
	out := make([]string, 0, len(houses))
	for _, h := range houses {
		out = append(out, h.Name)
	}
	return out
}

func nearbyNames(houses []*models.NearbyHouse) []string {
	out := make([]string, 0, len(houses))
	for _, h := range houses {
		out = append(out, h.Name)
	}
	return out
}
