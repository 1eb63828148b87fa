package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// AddFavorite saves a listing for the user. Saving twice is not an error.
func (uc *HouseUC) AddFavorite(ctx context.Context, userID, houseID string) error {
	if _, err := uuid.Parse(houseID); err != nil {
		return models.NewDomainError(models.ErrValidation, "invalid house id")
	}

	if err := uc.houseRepo.AddFavorite(ctx, userID, houseID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite drops a saved listing. Removing a listing that was never
// saved is not an error.
func (uc *HouseUC) RemoveFavorite(ctx context.Context, userID, houseID string) error {
	if _, err := uuid.Parse(houseID); err != nil {
		return models.NewDomainError(models.ErrValidation, "invalid house id")
	}

	if err := uc.houseRepo.RemoveFavorite(ctx, userID, houseID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListFavorites returns the saved listings, most recent first
func (uc *HouseUC) ListFavorites(ctx context.Context, userID string) ([]*models.House, error) {
	houses, err := uc.houseRepo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return houses, nil
}

// PurgeUserFavorites removes everything a deleted account had saved
func (uc *HouseUC) PurgeUserFavorites(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return models.NewDomainError(models.ErrValidation, "invalid user id")
	}

	removed, err := uc.houseRepo.DeleteFavoritesByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to purge favorites: %w", err)
	}

	logger.Info("Purged favorites of deleted user",
		logger.String("user_id", userID),
		logger.Int64("removed", removed))
	return nil
}
