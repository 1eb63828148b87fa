package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/jumbaa/internal/pkg/circuitbreaker"
	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/piresc/jumbaa/internal/pkg/retry"
)

// publisher is the subset of *nsq.Producer the Producer relies on
type publisher interface {
	Publish(topic string, body []byte) error
	Ping() error
	Stop()
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer publisher
	retrier  *retry.Retrier
	breaker  *circuitbreaker.CircuitBreaker
}

// NewProducer creates a new NSQ producer
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLogger(newLogAdapter("producer"), nsq.LogLevelWarning)

	// Ping the NSQ daemon to ensure connectivity
	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return newProducer(producer), nil
}

func newProducer(p publisher) *Producer {
	return &Producer{
		producer: p,
		retrier:  retry.NewWithDefaults(nil),
		breaker:  circuitbreaker.New(circuitbreaker.DefaultConfig("nsq-producer")),
	}
}

// Publish sends a JSON encoded message to the topic, retrying transient failures.
// Once nsqd keeps failing, publishes fail fast until the breaker lets a probe through.
func (p *Producer) Publish(ctx context.Context, topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = p.breaker.Execute(ctx, func(ctx context.Context) error {
		return p.retrier.Execute(ctx, "nsq publish "+topic, func(ctx context.Context) error {
			return p.producer.Publish(topic, msgBytes)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Ping checks the connection to nsqd
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
