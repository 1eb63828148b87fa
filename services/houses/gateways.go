package houses

import (
	"context"

	"github.com/piresc/jumbaa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/jumbaa/services/houses HouseGW

// HouseGW defines the listings gateways interface
type HouseGW interface {
	// NSQ Gateway
	PublishHouseCreated(ctx context.Context, event *models.HouseCreatedEvent) error
}
