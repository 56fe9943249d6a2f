package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type stubProductRepo struct {
	stock map[string]int64
}

func newStubProductRepo(stock map[string]int64) *stubProductRepo {
	return &stubProductRepo{stock: stock}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	return p, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	qty, ok := r.stock[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &domain.Product{ID: id, AvailableQuantity: qty}, nil
}

func (r *stubProductRepo) List(_ context.Context, _ ports.ProductListFilter) ([]*domain.Product, int64, error) {
	return nil, 0, nil
}

func (r *stubProductRepo) Update(_ context.Context, id string, _ ports.ProductUpdate) (*domain.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductRepo) AdjustQuantity(_ context.Context, id string, delta int64) (*domain.Product, error) {
	qty, ok := r.stock[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if qty+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	r.stock[id] = qty + delta
	return &domain.Product{ID: id, AvailableQuantity: r.stock[id]}, nil
}

type stubOrderRepo struct {
	orders    map[string]*domain.Order
	nextID    int
	createErr error
	lastList  ports.OrderListFilter
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *o
	clone.ID = "order-" + strconv.Itoa(r.nextID)
	r.orders[clone.ID] = &clone
	return &clone, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) List(_ context.Context, filter ports.OrderListFilter) ([]*domain.Order, int64, error) {
	r.lastList = filter
	out := make([]*domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.Email != "" && o.Email != filter.Email {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

type stubEventRepo struct {
	events []*domain.OrderEvent
}

func (r *stubEventRepo) Insert(_ context.Context, e *domain.OrderEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *stubEventRepo) ListByOrderID(_ context.Context, orderID string) ([]*domain.OrderEvent, error) {
	var out []*domain.OrderEvent
	for _, e := range r.events {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

type captureSink struct {
	events []ports.OrderEventInput
}

func (s *captureSink) Enqueue(event ports.OrderEventInput) {
	s.events = append(s.events, event)
}

func newOrderServiceForTest(stock map[string]int64) (*OrderService, *stubProductRepo, *stubOrderRepo, *stubEventRepo, *captureSink) {
	products := newStubProductRepo(stock)
	orders := newStubOrderRepo()
	events := &stubEventRepo{}
	sink := &captureSink{}
	svc := NewOrderService(orders, products, events, sink, zerolog.Nop())
	return svc, products, orders, events, sink
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	svc, products, _, _, sink := newOrderServiceForTest(map[string]int64{"p1": 10, "p2": 5})

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Name:  "Alice",
		Email: "alice@example.com",
		CartItems: []domain.CartItem{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 2},
		},
		TotalAmount: 99.50,
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, domain.OrderPending, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.True(t, len(order.OrderNumber) > 4, "order number should be generated")
	assert.Equal(t, int64(7), products.stock["p1"])
	assert.Equal(t, int64(3), products.stock["p2"])

	require.Len(t, sink.events, 1)
	assert.Equal(t, order.ID, sink.events[0].OrderID)
	assert.Equal(t, domain.OrderPending, sink.events[0].Status)
	assert.Equal(t, "alice@example.com", sink.events[0].Actor)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	svc, _, _, _, sink := newOrderServiceForTest(map[string]int64{})

	_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{Email: "a@example.com"})
	require.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, sink.events)
}

func TestOrderService_PlaceOrder_InsufficientStockRollsBack(t *testing.T) {
	svc, products, orders, _, sink := newOrderServiceForTest(map[string]int64{"p1": 10, "p2": 1})

	_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Email: "bob@example.com",
		CartItems: []domain.CartItem{
			{ProductID: "p1", Quantity: 4},
			{ProductID: "p2", Quantity: 2}, // only 1 in stock
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Earlier decrements must be compensated: no net stock change.
	assert.Equal(t, int64(10), products.stock["p1"])
	assert.Equal(t, int64(1), products.stock["p2"])
	assert.Empty(t, orders.orders, "no order should be created")
	assert.Empty(t, sink.events)
}

func TestOrderService_PlaceOrder_UnknownProductRollsBack(t *testing.T) {
	svc, products, _, _, _ := newOrderServiceForTest(map[string]int64{"p1": 10})

	_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Email: "bob@example.com",
		CartItems: []domain.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "ghost", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, int64(10), products.stock["p1"])
}

func TestOrderService_PlaceOrder_InvalidQuantity(t *testing.T) {
	svc, products, _, _, _ := newOrderServiceForTest(map[string]int64{"p1": 10})

	_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Email: "bob@example.com",
		CartItems: []domain.CartItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p1", Quantity: 0},
		},
	})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, int64(10), products.stock["p1"])
}

func TestOrderService_PlaceOrder_CreateFailureRollsBack(t *testing.T) {
	svc, products, orders, _, sink := newOrderServiceForTest(map[string]int64{"p1": 6})
	orders.createErr = errors.New("write failed")

	_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Email:     "bob@example.com",
		CartItems: []domain.CartItem{{ProductID: "p1", Quantity: 4}},
	})
	require.Error(t, err)
	assert.Equal(t, int64(6), products.stock["p1"])
	assert.Empty(t, sink.events)
}

func TestOrderService_ListOrders_ScopesNonAdmin(t *testing.T) {
	svc, _, orders, _, _ := newOrderServiceForTest(map[string]int64{"p1": 100})

	for _, email := range []string{"a@example.com", "a@example.com", "b@example.com"} {
		_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
			Email:     email,
			CartItems: []domain.CartItem{{ProductID: "p1", Quantity: 1}},
		})
		require.NoError(t, err)
	}

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{
		Role:  domain.RoleUser,
		Email: "a@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", orders.lastList.Email, "repository filter must carry the caller's email")
	assert.Len(t, result.Items, 2)

	result, err = svc.ListOrders(context.Background(), ports.ListOrdersInput{
		Role:  domain.RoleAdmin,
		Email: "admin@example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, orders.lastList.Email, "admin listing must not be scoped")
	assert.Len(t, result.Items, 3)
}

func TestOrderService_UpdateStatus_ValidTransition(t *testing.T) {
	svc, _, _, _, sink := newOrderServiceForTest(map[string]int64{"p1": 10})

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Email:     "a@example.com",
		CartItems: []domain.CartItem{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), order.ID, domain.OrderShipped, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderShipped, updated.Status)

	require.Len(t, sink.events, 2)
	assert.Equal(t, domain.OrderShipped, sink.events[1].Status)
	assert.Equal(t, "admin@example.com", sink.events[1].Actor)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	svc, _, _, _, sink := newOrderServiceForTest(map[string]int64{"p1": 10})

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Email:     "a@example.com",
		CartItems: []domain.CartItem{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, domain.OrderDelivered, "admin@example.com")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Len(t, sink.events, 1, "no event for a rejected transition")
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	svc, _, _, _, _ := newOrderServiceForTest(map[string]int64{})

	_, err := svc.UpdateStatus(context.Background(), "missing", domain.OrderShipped, "admin@example.com")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_ListEvents(t *testing.T) {
	svc, _, _, events, _ := newOrderServiceForTest(map[string]int64{"p1": 10})

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Email:     "a@example.com",
		CartItems: []domain.CartItem{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	events.events = append(events.events, &domain.OrderEvent{OrderID: order.ID, Status: domain.OrderPending})

	trail, err := svc.ListEvents(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, trail, 1)

	_, err = svc.ListEvents(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_DeleteOrder(t *testing.T) {
	svc, _, orders, _, _ := newOrderServiceForTest(map[string]int64{"p1": 10})

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{
		Email:     "a@example.com",
		CartItems: []domain.CartItem{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOrder(context.Background(), order.ID))
	assert.Empty(t, orders.orders)

	require.ErrorIs(t, svc.DeleteOrder(context.Background(), order.ID), domain.ErrOrderNotFound)
}
