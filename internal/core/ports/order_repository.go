package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// OrderListFilter carries query parameters for listing orders.
// Email scopes the result to a single buyer (RBAC for non-admins).
type OrderListFilter struct {
	Email  string // empty = no filter (admin)
	Search string // optional: match on order number, name or email
	Page   int
	Limit  int
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter OrderListFilter) ([]*domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// OrderEventRepository persists the order audit trail.
type OrderEventRepository interface {
	Insert(ctx context.Context, e *domain.OrderEvent) error
	ListByOrderID(ctx context.Context, orderID string) ([]*domain.OrderEvent, error)
}
