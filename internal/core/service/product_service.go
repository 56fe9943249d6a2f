package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type ProductService struct {
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewProductService(products ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Title:             input.Title,
		Brand:             input.Brand,
		Price:             input.Price,
		AvailableQuantity: input.AvailableQuantity,
		Rating:            input.Rating,
		Description:       input.Description,
		Images:            input.Images,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("title", created.Title).Msg("product created")
	return created, nil
}

func (s *ProductService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*ports.ProductListResult, error) {
	page, limit := normalizePaging(input.Page, input.Limit)

	items, total, err := s.products.List(ctx, ports.ProductListFilter{
		Search: input.Search,
		Sort:   input.Sort,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ProductListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, upd ports.ProductUpdate) (*domain.Product, error) {
	updated, err := s.products.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

// AdjustQuantity translates the action verb into a signed stock delta:
// increase = +1, decrease = -1, increase-by-value = +quantity. Decrease never
// takes the available quantity below zero.
func (s *ProductService) AdjustQuantity(ctx context.Context, input ports.AdjustQuantityInput) (*domain.Product, error) {
	var delta int64
	switch input.Action {
	case domain.QuantityIncrease:
		delta = 1
	case domain.QuantityDecrease:
		delta = -1
	case domain.QuantityIncreaseByValue:
		if input.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		delta = input.Quantity
	default:
		return nil, domain.ErrInvalidAction
	}

	updated, err := s.products.AdjustQuantity(ctx, input.ProductID, delta)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", input.ProductID).
		Str("action", string(input.Action)).
		Int64("delta", delta).
		Msg("stock adjusted")
	return updated, nil
}
