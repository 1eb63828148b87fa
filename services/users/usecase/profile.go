package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
)

// GetProfile returns the account of the signed-in user
func (uc *UserUC) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the first and last name
func (uc *UserUC) UpdateProfile(ctx context.Context, userID string, req *models.ProfileUpdateRequest) (*models.User, error) {
	firstName := utils.SanitizeString(req.FirstName)
	lastName := utils.SanitizeString(req.LastName)
	if firstName == "" && lastName == "" {
		return nil, models.NewDomainError(models.ErrValidation, "first_name or last_name is required")
	}

	user, err := uc.userRepo.UpdateProfile(ctx, userID, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the user, revokes the current token and tells the
// houses service to drop the user's favorites
func (uc *UserUC) DeleteAccount(ctx context.Context, session models.Session) error {
	if !session.IsAuthenticated() {
		return models.ErrUnauthorized
	}

	if err := uc.userRepo.DeleteUser(ctx, session.UserID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	// the account is gone already; the remaining steps only log on failure
	if err := uc.revocations.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		logger.Error("Failed to revoke token of deleted account",
			logger.String("user_id", session.UserID),
			logger.ErrorField(err))
	}

	event := &models.UserDeletedEvent{UserID: session.UserID, DeletedAt: models.Now()}
	if err := uc.userGW.PublishUserDeleted(ctx, event); err != nil {
		logger.Error("Failed to publish user deleted event",
			logger.String("user_id", session.UserID),
			logger.ErrorField(err))
	}

	logger.Info("User deleted account", logger.String("user_id", session.UserID))
	return nil
}
