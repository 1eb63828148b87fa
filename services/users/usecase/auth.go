package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	jwtpkg "github.com/piresc/jumbaa/internal/pkg/jwt"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// Client facing messages of the sign-up and login screens
const (
	msgBadEmail           = "The email address is badly formatted."
	msgWeakPassword       = "Password should be at least 6 characters"
	msgEmailInUse         = "The email address is already in use by another account."
	msgInvalidCredentials = "Invalid email or password"
)

// Signup creates a tenant account and signs it in
func (uc *UserUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, models.NewDomainError(models.ErrValidation, msgBadEmail)
	}
	if !utils.IsStrongPassword(req.Password) {
		return nil, models.NewDomainError(models.ErrValidation, msgWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := models.Now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    utils.SanitizeString(req.FirstName),
		LastName:     utils.SanitizeString(req.LastName),
		UserType:     models.UserTypeTenant,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.NewDomainError(models.ErrConflict, msgEmailInUse)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User signed up",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(email)))

	return uc.issueToken(user)
}

// Login verifies the credentials and returns a new token
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, models.NewDomainError(models.ErrInvalidCredentials, msgInvalidCredentials)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NewDomainError(models.ErrInvalidCredentials, msgInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.NewDomainError(models.ErrInvalidCredentials, msgInvalidCredentials)
	}

	return uc.issueToken(user)
}

// Logout revokes the token of the session until it expires
func (uc *UserUC) Logout(ctx context.Context, session models.Session) error {
	if !session.IsAuthenticated() {
		return models.ErrUnauthorized
	}

	if err := uc.revocations.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

func (uc *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, _, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.UserType, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		UserType:  user.UserType,
		ExpiresAt: expiresAt,
	}, nil
}
