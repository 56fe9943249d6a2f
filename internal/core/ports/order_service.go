package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// PlaceOrderInput carries a new order. Name and Email come from the
// authenticated caller's claims, not the request body.
type PlaceOrderInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	CartItems   []domain.CartItem
	TotalAmount float64
}

// ListOrdersInput carries the parameters for the order listing.
// Role and Email implement the owner scoping: non-admins only see their own.
type ListOrdersInput struct {
	Role   string
	Email  string
	Search string
	Page   int
	Limit  int
}

// OrderListResult is returned by ListOrders.
type OrderListResult struct {
	Items      []*domain.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	// PlaceOrder reserves stock for every line item before creating the
	// order. Reservation is all-or-nothing: if any item fails, decrements
	// already applied in this order are rolled back.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, input ListOrdersInput) (*OrderListResult, error)
	// UpdateStatus enforces the order state machine and returns
	// domain.ErrInvalidTransition on a disallowed move.
	UpdateStatus(ctx context.Context, id string, next domain.OrderStatus, actor string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ListEvents(ctx context.Context, orderID string) ([]*domain.OrderEvent, error)
}
