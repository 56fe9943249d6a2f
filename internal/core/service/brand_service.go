package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type BrandService struct {
	brands ports.BrandRepository
	logger zerolog.Logger
}

func NewBrandService(brands ports.BrandRepository, logger zerolog.Logger) *BrandService {
	return &BrandService{brands: brands, logger: logger}
}

func (s *BrandService) CreateBrand(ctx context.Context, input ports.CreateBrandInput) (*domain.Brand, error) {
	now := time.Now().UTC()
	brand := &domain.Brand{
		Name:        input.Name,
		Logo:        input.Logo,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.brands.Create(ctx, brand)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("brand_id", created.ID).Str("name", created.Name).Msg("brand created")
	return created, nil
}

func (s *BrandService) ListBrands(ctx context.Context, input ports.ListBrandsInput) (*ports.BrandListResult, error) {
	page, limit := normalizePaging(input.Page, input.Limit)

	items, total, err := s.brands.List(ctx, ports.BrandListFilter{
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.BrandListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *BrandService) UpdateBrand(ctx context.Context, id string, upd ports.BrandUpdate) (*domain.Brand, error) {
	updated, err := s.brands.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("brand_id", id).Msg("brand updated")
	return updated, nil
}

func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	if err := s.brands.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("brand_id", id).Msg("brand deleted")
	return nil
}
