package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

const houseColumns = `id, owner_id, name, location, price, bedrooms, description, image_url,
	images, contact_phone, contact_email, latitude, longitude, geohash, created_at, updated_at`

// houseRow is the flat table shape of models.House; images are stored as a JSON array
type houseRow struct {
	ID           string    `db:"id"`
	OwnerID      string    `db:"owner_id"`
	Name         string    `db:"name"`
	Location     string    `db:"location"`
	Price        float64   `db:"price"`
	Bedrooms     int       `db:"bedrooms"`
	Description  string    `db:"description"`
	ImageURL     string    `db:"image_url"`
	Images       string    `db:"images"`
	ContactPhone string    `db:"contact_phone"`
	ContactEmail string    `db:"contact_email"`
	Latitude     *float64  `db:"latitude"`
	Longitude    *float64  `db:"longitude"`
	Geohash      string    `db:"geohash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func newHouseRow(h *models.House) (*houseRow, error) {
	images := h.Images
	if images == nil {
		images = []string{}
	}
	encoded, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}

	return &houseRow{
		ID:           h.ID.String(),
		OwnerID:      h.OwnerID.String(),
		Name:         h.Name,
		Location:     h.Location,
		Price:        h.Price,
		Bedrooms:     h.Bedrooms,
		Description:  h.Description,
		ImageURL:     h.ImageURL,
		Images:       string(encoded),
		ContactPhone: h.Contact.Phone,
		ContactEmail: h.Contact.Email,
		Latitude:     h.Latitude,
		Longitude:    h.Longitude,
		Geohash:      h.Geohash,
		CreatedAt:    h.CreatedAt,
		UpdatedAt:    h.UpdatedAt,
	}, nil
}

func (r *houseRow) toModel() (*models.House, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid house id %q: %w", r.ID, err)
	}
	ownerID, err := uuid.Parse(r.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id %q: %w", r.OwnerID, err)
	}

	images := []string{}
	if r.Images != "" {
		if err := json.Unmarshal([]byte(r.Images), &images); err != nil {
			return nil, fmt.Errorf("invalid images of house %s: %w", r.ID, err)
		}
	}

	return &models.House{
		ID:          id,
		OwnerID:     ownerID,
		Name:        r.Name,
		Location:    r.Location,
		Price:       r.Price,
		Bedrooms:    r.Bedrooms,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Images:      images,
		Contact:     models.Contact{Phone: r.ContactPhone, Email: r.ContactEmail},
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Geohash:     r.Geohash,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

func rowsToModels(rows []houseRow) ([]*models.House, error) {
	out := make([]*models.House, 0, len(rows))
	for i := range rows {
		h, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
