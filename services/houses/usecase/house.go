package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/jumbaa/internal/pkg/geo"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
	"github.com/piresc/jumbaa/internal/utils"
)

// CreateHouse validates the add-house form, stores the listing and announces it
func (uc *HouseUC) CreateHouse(ctx context.Context, ownerID string, req *models.CreateHouseRequest) (*models.House, error) {
	owner, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}

	house, err := newHouse(owner, req)
	if err != nil {
		return nil, err
	}

	if err := uc.houseRepo.CreateHouse(ctx, house); err != nil {
		return nil, fmt.Errorf("failed to create house: %w", err)
	}

	event := &models.HouseCreatedEvent{
		HouseID:   house.ID.String(),
		OwnerID:   house.OwnerID.String(),
		Name:      house.Name,
		Geohash:   house.Geohash,
		CreatedAt: house.CreatedAt,
	}
	if err := uc.houseGW.PublishHouseCreated(ctx, event); err != nil {
		logger.Error("Failed to publish house created event",
			logger.String("house_id", event.HouseID),
			logger.ErrorField(err))
	}

	logger.Info("House created",
		logger.String("house_id", event.HouseID),
		logger.String("owner_id", event.OwnerID))
	return house, nil
}

func newHouse(owner uuid.UUID, req *models.CreateHouseRequest) (*models.House, error) {
	if req == nil {
		return nil, models.NewDomainError(models.ErrValidation, "request body is required")
	}

	name := utils.SanitizeString(req.Name)
	location := utils.SanitizeString(req.Location)
	switch {
	case name == "":
		return nil, models.NewDomainError(models.ErrValidation, "name is required")
	case location == "":
		return nil, models.NewDomainError(models.ErrValidation, "location is required")
	case !(req.Price > 0):
		return nil, models.NewDomainError(models.ErrValidation, "price must be greater than zero")
	case req.Bedrooms < 0:
		return nil, models.NewDomainError(models.ErrValidation, "bedrooms cannot be negative")
	case (req.Latitude == nil) != (req.Longitude == nil):
		return nil, models.NewDomainError(models.ErrValidation, "latitude and longitude must be given together")
	}

	contact := models.Contact{
		Phone: strings.TrimSpace(req.Contact.Phone),
		Email: utils.NormalizeEmail(req.Contact.Email),
	}
	if contact.Phone != "" && !utils.IsValidPhoneNumber(contact.Phone) {
		return nil, models.NewDomainError(models.ErrValidation, "contact phone is invalid")
	}
	if contact.Email != "" && !utils.IsValidEmail(contact.Email) {
		return nil, models.NewDomainError(models.ErrValidation, "contact email is invalid")
	}

	images := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" && len(images) > 0 {
		imageURL = images[0]
	}

	now := models.Now()
	house := &models.House{
		ID:          uuid.New(),
		OwnerID:     owner,
		Name:        name,
		Location:    location,
		Price:       req.Price,
		Bedrooms:    req.Bedrooms,
		Description: strings.TrimSpace(req.Description),
		ImageURL:    imageURL,
		Images:      images,
		Contact:     contact,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.Latitude != nil {
		p := geo.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if !p.Valid() {
			return nil, models.NewDomainError(models.ErrValidation, "coordinates are out of range")
		}
		lat, lon := p.Latitude, p.Longitude
		house.Latitude = &lat
		house.Longitude = &lon
		house.Geohash = geo.Encode(p)
	}

	return house, nil
}

// GetHouse returns a listing for the detail screen. IsFavorite is only
// resolved for signed-in users.
func (uc *HouseUC) GetHouse(ctx context.Context, id string, session models.Session) (*models.HouseDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.NewDomainError(models.ErrValidation, "invalid house id")
	}

	house, err := uc.houseRepo.GetHouseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get house: %w", err)
	}

	detail := &models.HouseDetail{House: house}
	if session.IsAuthenticated() {
		favorite, err := uc.houseRepo.IsFavorite(ctx, session.UserID, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check favorite: %w", err)
		}
		detail.IsFavorite = favorite
	}
	return detail, nil
}

// ListHouses returns the listing snapshot narrowed by the filter
func (uc *HouseUC) ListHouses(ctx context.Context, filter models.HouseFilter) ([]*models.House, error) {
	all, err := uc.houseRepo.ListHouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	return applyFilter(all, filter), nil
}

// applyFilter keeps the houses whose name or location contains the query and
// whose bedroom count matches. Order is preserved.
func applyFilter(all []*models.House, filter models.HouseFilter) []*models.House {
	query := strings.TrimSpace(filter.Query)

	out := make([]*models.House, 0, len(all))
	for _, h := range all {
		if query != "" && !utils.ContainsFold(h.Name, query) && !utils.ContainsFold(h.Location, query) {
			continue
		}
		if filter.Bedrooms != nil && h.Bedrooms != *filter.Bedrooms {
			continue
		}
		out = append(out, h)
	}
	return out
}
