package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type OrderService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	events   ports.OrderEventRepository
	sink     ports.OrderEventSink
	logger   zerolog.Logger
}

func NewOrderService(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	events ports.OrderEventRepository,
	sink ports.OrderEventSink,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		events:   events,
		sink:     sink,
		logger:   logger,
	}
}

// PlaceOrder reserves stock for every cart item before creating the order.
// Each reservation is a single conditional decrement that fails when not
// enough stock remains, so two concurrent orders can never both drain the
// same low-stock product. If any item fails, decrements already applied for
// this order are compensated before returning.
func (s *OrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if len(input.CartItems) == 0 {
		return nil, domain.ErrEmptyCart
	}

	reserved := make([]domain.CartItem, 0, len(input.CartItems))
	for _, item := range input.CartItems {
		if item.Quantity <= 0 {
			s.releaseStock(ctx, reserved)
			return nil, domain.ErrInvalidQuantity
		}
		if _, err := s.products.AdjustQuantity(ctx, item.ProductID, -item.Quantity); err != nil {
			s.releaseStock(ctx, reserved)
			return nil, fmt.Errorf("reserve stock for %s: %w", item.ProductID, err)
		}
		reserved = append(reserved, item)
	}

	now := time.Now().UTC()
	order := &domain.Order{
		OrderNumber: newOrderNumber(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		CartItems:   input.CartItems,
		TotalAmount: input.TotalAmount,
		Status:      domain.OrderPending,
		OrderDate:   now,
		UpdatedAt:   now,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.releaseStock(ctx, reserved)
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	s.sink.Enqueue(ports.OrderEventInput{
		OrderID:     created.ID,
		OrderNumber: created.OrderNumber,
		Status:      domain.OrderPending,
		Actor:       input.Email,
		Notes:       "order placed",
		Timestamp:   now,
	})

	s.logger.Info().
		Str("order_number", created.OrderNumber).
		Str("email", created.Email).
		Int("items", len(created.CartItems)).
		Msg("order placed")
	return created, nil
}

// releaseStock compensates decrements applied earlier in a failed order.
// Failures here are logged, not returned: the caller's error is the one that
// matters to the client.
func (s *OrderService) releaseStock(ctx context.Context, reserved []domain.CartItem) {
	for _, item := range reserved {
		if _, err := s.products.AdjustQuantity(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error().Err(err).
				Str("product_id", item.ProductID).
				Int64("quantity", item.Quantity).
				Msg("stock rollback failed")
		}
	}
}

// ListOrders returns a page of orders. Non-admin callers are always scoped
// to their own email regardless of what they ask for.
func (s *OrderService) ListOrders(ctx context.Context, input ports.ListOrdersInput) (*ports.OrderListResult, error) {
	page, limit := normalizePaging(input.Page, input.Limit)

	filter := ports.OrderListFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	}
	if input.Role != domain.RoleAdmin {
		filter.Email = input.Email
	}

	items, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.OrderListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// UpdateStatus moves an order through the state machine:
// pending → shipped → delivered, with cancelled reachable from pending and
// shipped. Anything else is rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, next domain.OrderStatus, actor string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, next)
	}

	updated, err := s.orders.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.sink.Enqueue(ports.OrderEventInput{
		OrderID:     updated.ID,
		OrderNumber: updated.OrderNumber,
		Status:      next,
		Actor:       actor,
		Notes:       "status changed",
		Timestamp:   time.Now().UTC(),
	})

	s.logger.Info().
		Str("order_id", id).
		Str("status", string(next)).
		Str("actor", actor).
		Msg("order status updated")
	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

// ListEvents returns the audit trail of a single order, oldest first.
func (s *OrderService) ListEvents(ctx context.Context, orderID string) ([]*domain.OrderEvent, error) {
	if _, err := s.orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.events.ListByOrderID(ctx, orderID)
}

// newOrderNumber returns a client-facing order reference.
func newOrderNumber() string {
	return "ORD-" + uuid.NewString()
}
