package users

import (
	"context"

	"github.com/piresc/jumbaa/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/jumbaa/services/users UserGW

// UserGW defines the user gateways interface
type UserGW interface {
	// NSQ Gateway
	PublishUserDeleted(ctx context.Context, event *models.UserDeletedEvent) error
}
