package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// CreateHouse inserts a listing and drops the cached snapshot
func (r *HouseRepo) CreateHouse(ctx context.Context, house *models.House) error {
	row, err := newHouseRow(house)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO houses (id, owner_id, name, location, price, bedrooms, description,
			image_url, images, contact_phone, contact_email, latitude, longitude,
			geohash, created_at, updated_at
		) VALUES (:id, :owner_id, :name, :location, :price, :bedrooms, :description,
			:image_url, :images, :contact_phone, :contact_email, :latitude, :longitude,
			:geohash, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to insert house: %w", err)
	}

	if err := r.invalidateSnapshot(ctx); err != nil {
		// readers see the new listing once the TTL runs out
		logger.Warn("Failed to invalidate listings snapshot",
			logger.String("house_id", row.ID),
			logger.ErrorField(err))
	}
	return nil
}

// GetHouseByID retrieves a listing by id
func (r *HouseRepo) GetHouseByID(ctx context.Context, id string) (*models.House, error) {
	query := fmt.Sprintf(`SELECT %s FROM houses WHERE id = $1`, houseColumns)

	var row houseRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("house %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get house: %w", err)
	}

	return row.toModel()
}

// ListHouses returns every listing, newest first. The result is served from the
// Redis snapshot when one is cached.
func (r *HouseRepo) ListHouses(ctx context.Context) ([]*models.House, error) {
	if houses, ok := r.cachedSnapshot(ctx); ok {
		return houses, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM houses ORDER BY created_at DESC, id`, houseColumns)

	var rows []houseRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}

	houses, err := rowsToModels(rows)
	if err != nil {
		return nil, err
	}

	r.storeSnapshot(ctx, houses)
	return houses, nil
}
