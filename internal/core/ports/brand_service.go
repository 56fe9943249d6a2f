package ports

import (
	"context"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

// CreateBrandInput carries the fields for a new brand.
type CreateBrandInput struct {
	Name        string
	Logo        string
	Description string
}

// ListBrandsInput carries the parameters for the brand listing.
type ListBrandsInput struct {
	Search string
	Page   int
	Limit  int
}

// BrandListResult is returned by ListBrands.
type BrandListResult struct {
	Items      []*domain.Brand
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BrandService defines use-case operations for brands.
type BrandService interface {
	CreateBrand(ctx context.Context, input CreateBrandInput) (*domain.Brand, error)
	ListBrands(ctx context.Context, input ListBrandsInput) (*BrandListResult, error)
	UpdateBrand(ctx context.Context, id string, upd BrandUpdate) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
}
