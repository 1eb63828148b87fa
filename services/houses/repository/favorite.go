package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

const foreignKeyViolation = "23503"

// AddFavorite saves a listing for a user. Saving it twice is a no-op.
func (r *HouseRepo) AddFavorite(ctx context.Context, userID, houseID string) error {
	query := `
		INSERT INTO favorites (user_id, house_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, house_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, houseID, models.Now()); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("house %s: %w", houseID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite deletes a saved listing. Removing a missing favorite is a no-op.
func (r *HouseRepo) RemoveFavorite(ctx context.Context, userID, houseID string) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND house_id = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, houseID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether the user saved the listing
func (r *HouseRepo) IsFavorite(ctx context.Context, userID, houseID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND house_id = $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, houseID); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// ListFavorites returns the user's saved listings, most recently saved first
func (r *HouseRepo) ListFavorites(ctx context.Context, userID string) ([]*models.House, error) {
	query := `
		SELECT h.id, h.owner_id, h.name, h.location, h.price, h.bedrooms, h.description,
			h.image_url, h.images, h.contact_phone, h.contact_email, h.latitude,
			h.longitude, h.geohash, h.created_at, h.updated_at
		FROM favorites f
		JOIN houses h ON h.id = f.house_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	var rows []houseRow
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return rowsToModels(rows)
}

// DeleteFavoritesByUser removes every favorite of a user and returns how many were removed
func (r *HouseRepo) DeleteFavoritesByUser(ctx context.Context, userID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete favorites: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows, nil
}
