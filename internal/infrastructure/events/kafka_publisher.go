package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

// Writer is the part of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes portal events as JSON, keyed by the event key so
// that events of one quote or shipment stay ordered on a partition.
type KafkaPublisher struct {
	writer Writer
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
	})
}

func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt entities.Event) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(evt.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("[events][kafka] publish failed type=%s key=%s err=%v", evt.Type, evt.Key, err)
		return err
	}
	log.Printf("[events][kafka] published type=%s key=%s", evt.Type, evt.Key)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher logs events when no broker is configured.
type NoopPublisher struct{}

var _ interfaces.IEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(_ context.Context, evt entities.Event) error {
	log.Printf("[events][noop] type=%s key=%s", evt.Type, evt.Key)
	return nil
}
