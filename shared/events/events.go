package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/draftea/payment-simulator/shared/models"
)

// Metadata represents event metadata
type Metadata map[string]string

func (m Metadata) Clone() Metadata {
	clone := Metadata{}
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Event represents a domain event
type Event struct {
	ID          models.ID   `json:"id"`
	AggregateID models.ID   `json:"aggregate_id"`
	EventType   string      `json:"event_type"`
	Version     string      `json:"version"`
	Data        interface{} `json:"data"`
	Metadata    Metadata    `json:"metadata"`
	Timestamp   time.Time   `json:"timestamp"`
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// NewEvent creates a new domain event
func NewEvent(aggregateID models.ID, eventType string, data interface{}) *Event {
	return &Event{
		ID:          models.GenerateUUID(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Version:     "1.0",
		Data:        data,
		Metadata:    make(Metadata),
		Timestamp:   time.Now(),
	}
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata[key] = value
	return e
}

// MarshalPayload marshals the event payload
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	if b, ok := e.Data.([]byte); ok {
		return b, nil
	}

	if b, ok := e.Data.(json.RawMessage); ok {
		return b, nil
	}

	return json.Marshal(e.Data)
}

// NopPublisher drops every event. Used when no event sink is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, events ...*Event) error {
	return nil
}

// Event Types Constants
const (
	PaymentMethodRegisteredEvent = "payment.method.registered"
	TransactionLoggedEvent       = "payment.transaction.logged"
)
