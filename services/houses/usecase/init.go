package usecase

import (
	"math"

	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/services/houses"
)

// DefaultNearbyRadiusKm applies when the configured radius is unset or not a
// positive finite number
const DefaultNearbyRadiusKm = 10.0

type HouseUC struct {
	houseRepo houses.HouseRepo
	houseGW   houses.HouseGW
	cfg       *models.Config
}

// NewHouseUC creates a new listings usecase instance
func NewHouseUC(
	houseRepo houses.HouseRepo,
	houseGW houses.HouseGW,
	cfg *models.Config,
) *HouseUC {
	return &HouseUC{
		houseRepo: houseRepo,
		houseGW:   houseGW,
		cfg:       cfg,
	}
}

func (uc *HouseUC) radiusKm() float64 {
	if uc.cfg == nil {
		return DefaultNearbyRadiusKm
	}
	r := uc.cfg.Listings.NearbyRadiusKm
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return DefaultNearbyRadiusKm
	}
	return r
}
