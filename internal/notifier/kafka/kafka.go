// Package kafka publishes planner changes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"eventPlanner/internal/config"
	"eventPlanner/internal/planner"
	"fmt"
	"github.com/twmb/franz-go/pkg/kgo"
	"time"
)

const defaultTimeout = 5 * time.Second

type Publisher struct {
	client  *kgo.Client
	topic   string
	timeout time.Duration
}

func New(ctx context.Context, cfg *config.Kafka) (*Publisher, error) {
	const op = "notifier.kafka.New"

	p, err := newPublisher(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = p.client.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("%s: failed to ping Kafka: %w", op, err)
	}

	return p, nil
}

func newPublisher(cfg *config.Kafka) (*Publisher, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.RecordDeliveryTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}

	return &Publisher{client: client, topic: cfg.Topic, timeout: timeout}, nil
}

// Notify produces the change synchronously, keyed by the created entity id.
// It gives up after the configured timeout.
func (p *Publisher) Notify(ctx context.Context, change planner.Change) error {
	const op = "notifier.kafka.Notify"

	record, err := newRecord(p.topic, change)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err = p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p *Publisher) Close() {
	p.client.Close()
}

func newRecord(topic string, change planner.Change) (*kgo.Record, error) {
	value, err := json.Marshal(change)
	if err != nil {
		return nil, fmt.Errorf("encode change: %w", err)
	}

	return &kgo.Record{
		Topic: topic,
		Key:   []byte(change.EntityID()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "kind", Value: []byte(change.Kind)},
		},
	}, nil
}
