package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new catalog entry.
type CreateProductInput struct {
	Title             string
	Brand             string
	Price             float64
	AvailableQuantity int64
	Rating            float64
	Description       string
	Images            []string
}

// ListProductsInput carries the parameters for the public product listing.
type ListProductsInput struct {
	Search string
	Sort   string
	Page   int
	Limit  int
}

// ProductListResult is returned by ListProducts.
type ProductListResult struct {
	Items      []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AdjustQuantityInput names a stock adjustment on a single product.
type AdjustQuantityInput struct {
	ProductID string
	Action    domain.QuantityAction
	// Quantity is only consulted for the increase-by-value action.
	Quantity int64
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductListResult, error)
	UpdateProduct(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	AdjustQuantity(ctx context.Context, input AdjustQuantityInput) (*domain.Product, error)
}
