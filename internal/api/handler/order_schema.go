package handler

type cartItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Title     string  `json:"title"`
	Quantity  int64   `json:"quantity"  validate:"required,gt=0"`
	Price     float64 `json:"price"     validate:"gte=0"`
}

type placeOrderRequest struct {
	Phone       string            `json:"phone"       validate:"required"`
	Address     string            `json:"address"     validate:"required"`
	CartItems   []cartItemRequest `json:"cartItems"   validate:"required,min=1,dive"`
	TotalAmount float64           `json:"totalAmount" validate:"gte=0"`
}

type updateOrderStatusRequest struct {
	NewStatus string `json:"newStatus" validate:"required,oneof=pending shipped delivered cancelled"`
}
