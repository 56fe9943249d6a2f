package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("unauthorized access")

	ErrProductNotFound   = errors.New("product not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNothingToUpdate   = errors.New("no fields were updated")
	ErrInsufficientStock = errors.New("not enough quantity available")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidAction     = errors.New("invalid quantity action")
)
