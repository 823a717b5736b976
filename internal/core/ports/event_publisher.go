package ports

import (
	"context"
	"time"
)

// OrderStatusEvent describes a single order lifecycle change for downstream
// consumers (notifications, analytics). Identifiers travel as strings so the
// event can be serialized without importing domain types.
type OrderStatusEvent struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	CourierID   string    `json:"courier_id,omitempty"`
	Status      string    `json:"status"`
	FinalAmount string    `json:"final_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order lifecycle events to the message broker.
// Publishing happens after the owning transaction commits; a publish failure
// is logged and never rolls the business change back.
type OrderEventPublisher interface {
	// PublishStatusChanged emits one status change event.
	PublishStatusChanged(ctx context.Context, event OrderStatusEvent) error

	// Close flushes buffered events and releases broker connections.
	Close() error
}
