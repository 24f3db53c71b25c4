package catalogd

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/swtraders/admin/internal/catalog"
)

// Every mutation publishes a versioned envelope so downstream consumers
// (reporting, stock sync) can follow catalog changes without polling.
const (
	TopicProductEvents = "catalog.product"
	TopicOrderEvents   = "catalog.order"

	EventProductCreated = "ProductCreated"
	EventProductUpdated = "ProductUpdated"
	EventProductDeleted = "ProductDeleted"
	EventOrderCreated   = "OrderCreated"
	EventOrderUpdated   = "OrderUpdated"
	EventOrderDeleted   = "OrderDeleted"
)

type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	TraceID      string          `json:"trace_id,omitempty"`
	Payload      json.RawMessage `json:"payload"`
}

type ProductEventPayload struct {
	ProductID int64            `json:"product_id"`
	Product   *catalog.Product `json:"product,omitempty"` // absent on delete
}

type OrderEventPayload struct {
	OrderID int64          `json:"order_id"`
	Order   *catalog.Order `json:"order,omitempty"` // absent on delete
}

func newEnvelope(eventType, producer, traceID string, payload any) Envelope {
	return Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     producer,
		TraceID:      traceID,
		Payload:      mustMarshal(payload),
	}
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
