package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/jumbaa/internal/pkg/constants"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// PublishHouseCreated announces a new listing
func (g *HouseGW) PublishHouseCreated(ctx context.Context, event *models.HouseCreatedEvent) error {
	if err := g.publisher.Publish(ctx, constants.TopicHouseCreated, event); err != nil {
		return fmt.Errorf("failed to publish house created event for %s: %w", event.HouseID, err)
	}
	return nil
}
