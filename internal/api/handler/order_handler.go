package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/key-tactile/commerce-api/internal/api/metrics"
	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /orders (role "user" only — admins do not shop).
//
// Buyer name and email come from the token claims, never from the body.
// Stock reservation is all-or-nothing across the cart.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  response
// @Failure      400   {object}  response
// @Failure      404   {object}  response
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	items := make([]domain.CartItem, len(req.CartItems))
	for i, item := range req.CartItems {
		items[i] = domain.CartItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	order, err := h.orderService.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		Name:        claims.Name,
		Email:       claims.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CartItems:   items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			metrics.OrdersRejectedTotal.WithLabelValues("empty_cart").Inc()
			return respondError(c, http.StatusBadRequest, "Cart is empty. Cannot place order.")
		case errors.Is(err, domain.ErrProductNotFound):
			metrics.OrdersRejectedTotal.WithLabelValues("product_not_found").Inc()
			return respondError(c, http.StatusNotFound, "Product not found!")
		case errors.Is(err, domain.ErrInsufficientStock):
			metrics.OrdersRejectedTotal.WithLabelValues("insufficient_stock").Inc()
			return respondError(c, http.StatusBadRequest, "Not enough quantity available.")
		case errors.Is(err, domain.ErrInvalidQuantity):
			metrics.OrdersRejectedTotal.WithLabelValues("invalid_quantity").Inc()
			return respondError(c, http.StatusBadRequest, "Item quantity must be greater than zero.")
		}
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return respond(c, http.StatusCreated, "Order placed successfully!", order)
}

// List handles GET /orders. Admins see everything; everyone else only their
// own orders.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Match on order number, name or email"
// @Success      200     {object}  response
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, limit := pagingParams(c)
	result, err := h.orderService.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Role:   claims.Role,
		Email:  claims.Email,
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return respondList(c, http.StatusOK, "Orders Fetched Successfully.", result.Items, meta{
		TotalItems:  result.Total,
		CurrentPage: result.Page,
		TotalPages:  result.TotalPages,
		PageSize:    result.Limit,
	})
}

// UpdateStatus handles PATCH /orders/:id/status (admin only).
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Order id"
// @Param        body  body      updateOrderStatusRequest  true  "New status"
// @Success      200   {object}  response
// @Failure      404   {object}  response
// @Failure      422   {object}  response
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), c.Param("id"), domain.OrderStatus(req.NewStatus), claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return respondError(c, http.StatusNotFound, "Order not found!")
		}
		if errors.Is(err, domain.ErrInvalidTransition) {
			return respondError(c, http.StatusUnprocessableEntity, err.Error())
		}
		return err
	}

	return respond(c, http.StatusOK, "Order status updated successfully.", order)
}

// Delete handles DELETE /orders/:id (admin only).
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Order id"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orderService.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return respondError(c, http.StatusNotFound, "Order not found!")
		}
		return err
	}

	return respond(c, http.StatusOK, "Order deleted successfully.", nil)
}

// Events handles GET /orders/:id/events (admin only) — the audit trail.
//
// @Summary      List order audit events
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Order id"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /orders/{id}/events [get]
func (h *OrderHandler) Events(c echo.Context) error {
	events, err := h.orderService.ListEvents(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return respondError(c, http.StatusNotFound, "Order not found!")
		}
		return err
	}

	return respond(c, http.StatusOK, "Order events fetched successfully.", events)
}
