package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// ProductListFilter carries query parameters for listing products.
type ProductListFilter struct {
	Search string // optional: case-insensitive match on title, brand or description
	Sort   string // "price-asc", "price-desc" or empty
	Page   int    // 1-based
	Limit  int    // rows per page
}

// ProductUpdate holds the mutable product fields. Zero-valued fields are
// skipped when applying the update, mirroring the partial PUT semantics.
type ProductUpdate struct {
	Title             string
	Brand             string
	Price             float64
	AvailableQuantity int64
	Rating            float64
	Description       string
	Images            []string
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductListFilter) ([]*domain.Product, int64, error)
	// Update applies the non-zero fields of upd. Returns
	// domain.ErrNothingToUpdate when no field changes.
	Update(ctx context.Context, id string, upd ProductUpdate) (*domain.Product, error)
	// AdjustQuantity atomically adds delta to availableQuantity. A negative
	// delta only succeeds when enough stock remains; otherwise
	// domain.ErrInsufficientStock is returned and nothing is written.
	AdjustQuantity(ctx context.Context, id string, delta int64) (*domain.Product, error)
}
