package ports

import (
	"context"
	"time"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// OrderEventInput is a single audit entry queued for asynchronous recording.
type OrderEventInput struct {
	OrderID     string
	OrderNumber string
	Status      domain.OrderStatus
	Actor       string
	Notes       string
	Timestamp   time.Time
}

// OrderEventService processes one audit event (consumed by the dispatcher).
type OrderEventService interface {
	Record(ctx context.Context, event OrderEventInput) error
}

// OrderEventSink accepts audit events for later recording. The order service
// depends on this instead of the dispatcher so tests can capture events.
type OrderEventSink interface {
	Enqueue(event OrderEventInput)
}
