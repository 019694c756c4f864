package orders

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated = "OrderCreated"
	TopicOrderCreated = "order.created"
)

// Envelope is the versioned wrapper every published event rides in.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderCreatedPayload struct {
	OrderID    string  `json:"order_id"`
	BuyerEmail string  `json:"buyer_email"`
	Items      []Item  `json:"items"`
	Total      float64 `json:"total"`
}

// PartitionKey keys events by order id so all events for one order stay on
// one partition.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
