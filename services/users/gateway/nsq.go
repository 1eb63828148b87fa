package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/jumbaa/internal/pkg/constants"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// PublishUserDeleted tells the other services that an account is gone
func (g *UserGW) PublishUserDeleted(ctx context.Context, event *models.UserDeletedEvent) error {
	if err := g.publisher.Publish(ctx, constants.TopicUserDeleted, event); err != nil {
		return fmt.Errorf("failed to publish user deleted event: %w", err)
	}
	return nil
}
