package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher announces domain events.
type Publisher interface {
	Publish(ctx context.Context, userID, resourceID uuid.UUID, operation string)
}

// EventPublisher publishes domain events to Kafka. Publishing is best effort:
// failures are logged and never returned to the caller.
type EventPublisher struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer, now: time.Now}
}

// Publish sends one event keyed by the acting user.
func (p *EventPublisher) Publish(ctx context.Context, userID, resourceID uuid.UUID, operation string) {
	event := models.Event{
		EventID:    uuid.NewString(),
		Timestamp:  p.now().Unix(),
		UserID:     userID.String(),
		ResourceID: resourceID.String(),
		Operation:  operation,
	}

	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "operation", operation)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "operation", operation, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}
