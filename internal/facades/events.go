package facades

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventsKafkaFacade publishes domain events to a Kafka topic.
type EventsKafkaFacade struct {
	writer KafkaWriter
}

// NewEventsKafkaFacade creates a new facade with a Kafka writer.
func NewEventsKafkaFacade(writer KafkaWriter) *EventsKafkaFacade {
	return &EventsKafkaFacade{writer: writer}
}

// NewKafkaWriter returns a writer for topic on brokers, or nil when no broker is configured.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Publish writes event keyed by the changed entity, so events of one entity stay ordered.
func (f *EventsKafkaFacade) Publish(ctx context.Context, event models.Event) error {
	if f.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%d", event.Type, event.EntityID)),
		Value: data,
	}
	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
		return err
	}

	logger.Log.Infow("event published to Kafka", "event_id", event.EventID, "type", event.Type)
	return nil
}

// Close releases the writer.
func (f *EventsKafkaFacade) Close() error {
	if f.writer == nil {
		return nil
	}
	return f.writer.Close()
}
