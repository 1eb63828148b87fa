package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/models"
)

// maxAttempts is how many times a message is delivered before it is dropped
const maxAttempts = 5

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for a topic/channel and connects it to nsqlookupd
// when lookupd addresses are configured, or straight to nsqd otherwise
func NewConsumer(topic, channel string, cfg models.NSQConfig, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	config.MaxAttempts = maxAttempts

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLogger(newLogAdapter("consumer"), nsq.LogLevelWarning)
	consumer.AddHandler(wrapHandler(topic, handler))

	if len(cfg.LookupdAddresses) > 0 {
		err = consumer.ConnectToNSQLookupds(cfg.LookupdAddresses)
	} else {
		err = consumer.ConnectToNSQD(cfg.NSQDAddress)
	}
	if err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect NSQ consumer for %s: %w", topic, err)
	}

	return &Consumer{consumer: consumer}, nil
}

// wrapHandler adapts a MessageHandler to go-nsq. Returning an error requeues the
// message; messages that keep failing are logged and dropped.
func wrapHandler(topic string, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		if len(message.Body) == 0 {
			return nil
		}

		err := handler(message.Body)
		if err == nil {
			return nil
		}

		if message.Attempts >= maxAttempts {
			logger.Error("Dropping message after repeated failures",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.ErrorField(err))
			return nil
		}

		logger.Warn("Error processing message, requeueing",
			logger.String("topic", topic),
			logger.Int("attempts", int(message.Attempts)),
			logger.ErrorField(err))
		return err
	}
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	err := json.Unmarshal(messageBody, v)
	if err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight messages
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
