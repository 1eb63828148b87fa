package models

import "time"

// UserDeletedEvent is published when an account is removed
type UserDeletedEvent struct {
	UserID    string    `json:"user_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// HouseCreatedEvent is published when a listing is added
type HouseCreatedEvent struct {
	HouseID   string    `json:"house_id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Geohash   string    `json:"geohash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
