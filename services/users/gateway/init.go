package gateway

import (
	"context"
)

// Publisher is the subset of the NSQ producer used by the gateway
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// UserGW implements users.UserGW
type UserGW struct {
	publisher Publisher
}

// NewUserGW creates a new user gateway
func NewUserGW(publisher Publisher) *UserGW {
	return &UserGW{publisher: publisher}
}
