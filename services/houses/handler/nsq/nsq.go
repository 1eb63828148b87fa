package nsq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/jumbaa/internal/pkg/constants"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
	nsqpkg "github.com/piresc/jumbaa/internal/pkg/nsq"
	"github.com/piresc/jumbaa/services/houses"
)

// handleTimeout bounds the work done for a single message
const handleTimeout = 10 * time.Second

// HousesHandler consumes the events the houses service reacts to
type HousesHandler struct {
	houseUC   houses.HouseUC
	cfg       *models.Config
	consumers []*nsqpkg.Consumer
}

// NewHousesHandler creates a new houses NSQ handler
func NewHousesHandler(houseUC houses.HouseUC, cfg *models.Config) *HousesHandler {
	return &HousesHandler{
		houseUC: houseUC,
		cfg:     cfg,
	}
}

// InitNSQConsumers subscribes to the user_deleted topic
func (h *HousesHandler) InitNSQConsumers() error {
	channel := h.cfg.NSQ.Channel
	if channel == "" {
		channel = constants.ChannelHouses
	}

	consumer, err := nsqpkg.NewConsumer(constants.TopicUserDeleted, channel, h.cfg.NSQ, h.HandleUserDeleted)
	if err != nil {
		return fmt.Errorf("failed to initialize user deleted consumer: %w", err)
	}
	h.consumers = append(h.consumers, consumer)

	logger.Info("NSQ consumers initialized",
		logger.String("topic", constants.TopicUserDeleted),
		logger.String("channel", channel))
	return nil
}

// HandleUserDeleted purges the favorites of a removed account. Malformed
// events are dropped; storage failures are returned so NSQ requeues the message.
func (h *HousesHandler) HandleUserDeleted(body []byte) error {
	var event models.UserDeletedEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		logger.Error("Dropping malformed user deleted event", logger.ErrorField(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	err := h.houseUC.PurgeUserFavorites(ctx, event.UserID)
	if errors.Is(err, models.ErrValidation) {
		logger.Error("Dropping user deleted event with invalid user id",
			logger.String("user_id", event.UserID))
		return nil
	}
	return err
}

// StopConsumers stops every consumer and waits for in-flight messages
func (h *HousesHandler) StopConsumers() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}
