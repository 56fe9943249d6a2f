package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type orderEventService struct {
	repo   ports.OrderEventRepository
	logger zerolog.Logger
}

// NewOrderEventService returns the audit-trail recorder consumed by the
// queue dispatcher.
func NewOrderEventService(repo ports.OrderEventRepository, logger zerolog.Logger) ports.OrderEventService {
	return &orderEventService{repo: repo, logger: logger}
}

func (s *orderEventService) Record(ctx context.Context, in ports.OrderEventInput) error {
	event := &domain.OrderEvent{
		OrderID:     in.OrderID,
		OrderNumber: in.OrderNumber,
		Status:      in.Status,
		Actor:       in.Actor,
		Notes:       in.Notes,
		Timestamp:   in.Timestamp,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("record order event: %w", err)
	}

	s.logger.Debug().
		Str("order_id", in.OrderID).
		Str("status", string(in.Status)).
		Msg("order event recorded")
	return nil
}
