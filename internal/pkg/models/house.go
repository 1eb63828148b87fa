package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact holds how to reach the landlord of a listing
type Contact struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// House represents a rental listing
type House struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Bedrooms    int       `json:"bedrooms"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Images      []string  `json:"images"`
	Contact     Contact   `json:"contact"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Geohash     string    `json:"geohash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Coordinates returns the listing position; ok is false when either
// coordinate is missing.
func (h *House) Coordinates() (lat, lon float64, ok bool) {
	if h == nil || h.Latitude == nil || h.Longitude == nil {
		return 0, 0, false
	}
	return *h.Latitude, *h.Longitude, true
}

// CreateHouseRequest is the payload of the add-house form
type CreateHouseRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Images      []string `json:"images"`
	Contact     Contact  `json:"contact"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// HouseFilter narrows the listing feed. Query matches name or location as a
// case-insensitive substring; Bedrooms is an equality filter when set.
type HouseFilter struct {
	Query    string
	Bedrooms *int
}

// HouseDetail is a listing as shown on the detail screen
type HouseDetail struct {
	*House
	IsFavorite bool `json:"is_favorite"`
}

// NearbyHouse is a listing annotated with its distance from the reference point
type NearbyHouse struct {
	*House
	DistanceKm float64 `json:"distance_km"`
}

// Feed is the home screen payload. Both views come from the same snapshot.
// Nearby is nil when the client sent no location.
type Feed struct {
	Houses            []*House       `json:"houses"`
	Nearby            []*NearbyHouse `json:"nearby"`
	RadiusKm          float64        `json:"radius_km"`
	LocationAvailable bool           `json:"location_available"`
}

// Favorite links a user to a listing they saved
type Favorite struct {
	UserID    uuid.UUID `json:"user_id"`
	HouseID   uuid.UUID `json:"house_id"`
	CreatedAt time.Time `json:"created_at"`
}
