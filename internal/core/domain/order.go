package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// Cancellation is reachable until the order has shipped out for good.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderShipped, OrderCancelled},
	OrderShipped: {OrderDelivered, OrderCancelled},
}

// CanTransitionTo reports whether moving from the current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CartItem is a single order line referencing a product by id.
type CartItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Title     string  `json:"title,omitempty" bson:"title,omitempty"`
	Quantity  int64   `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price,omitempty" bson:"price,omitempty"`
}

// Order is the purchase aggregate. Name and email are taken from the
// authenticated buyer, never from the request body.
type Order struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	OrderNumber string      `json:"orderNumber" bson:"order_number"`
	Name        string      `json:"name" bson:"name"`
	Email       string      `json:"email" bson:"email"`
	Phone       string      `json:"phone" bson:"phone"`
	Address     string      `json:"address" bson:"address"`
	CartItems   []CartItem  `json:"cartItems" bson:"cart_items"`
	TotalAmount float64     `json:"totalAmount" bson:"total_amount"`
	Status      OrderStatus `json:"status" bson:"status"`
	OrderDate   time.Time   `json:"orderDate" bson:"order_date"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}

// OrderEvent is a single audit trail entry for an order.
type OrderEvent struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	OrderID     string      `json:"order_id" bson:"order_id"`
	OrderNumber string      `json:"orderNumber" bson:"order_number"`
	Status      OrderStatus `json:"status" bson:"status"`
	Actor       string      `json:"actor" bson:"actor"`
	Notes       string      `json:"notes,omitempty" bson:"notes,omitempty"`
	Timestamp   time.Time   `json:"timestamp" bson:"timestamp"`
}
