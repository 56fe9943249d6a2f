package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// BrandListFilter carries query parameters for listing brands.
type BrandListFilter struct {
	Search string // optional: case-insensitive match on name or description
	Page   int
	Limit  int
}

// BrandUpdate holds the mutable brand fields; zero-valued fields are skipped.
type BrandUpdate struct {
	Name        string
	Logo        string
	Description string
}

// BrandRepository defines persistence operations for brands.
type BrandRepository interface {
	Create(ctx context.Context, b *domain.Brand) (*domain.Brand, error)
	List(ctx context.Context, filter BrandListFilter) ([]*domain.Brand, int64, error)
	Update(ctx context.Context, id string, upd BrandUpdate) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}
