package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/jumbaa/internal/pkg/geo"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// Feed builds the home screen from a single listing snapshot. The nearby view
// is only computed when the client sent a reference point.
func (uc *HouseUC) Feed(ctx context.Context, filter models.HouseFilter, ref *geo.Point) (*models.Feed, error) {
	all, err := uc.houseRepo.ListHouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	feed := &models.Feed{
		Houses:   applyFilter(all, filter),
		RadiusKm: uc.radiusKm(),
	}
	if ref == nil {
		return feed, nil
	}

	nearby, err := uc.nearby(*ref, feed.Houses, false)
	if err != nil {
		return nil, err
	}
	feed.Nearby = nearby
	feed.LocationAvailable = true
	return feed, nil
}

// Nearby returns the listings within the configured radius of ref, in feed
// order or nearest first when sortByDistance is set
func (uc *HouseUC) Nearby(ctx context.Context, ref geo.Point, sortByDistance bool) ([]*models.NearbyHouse, error) {
	all, err := uc.houseRepo.ListHouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	return uc.nearby(ref, all, sortByDistance)
}

func (uc *HouseUC) nearby(ref geo.Point, all []*models.House, sortByDistance bool) ([]*models.NearbyHouse, error) {
	matches, err := geo.MatchWithinRadius(ref, all, uc.radiusKm())
	if err != nil {
		return nil, err
	}
	if sortByDistance {
		matches = geo.SortByDistance(matches)
	}

	out := make([]*models.NearbyHouse, 0, len(matches))
	for _, m := range matches {
		out = append(out, &models.NearbyHouse{House: m.Record, DistanceKm: m.DistanceKm})
	}
	return out, nil
}
