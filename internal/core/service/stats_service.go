package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/key-tactile/commerce-api/internal/core/ports"
)

type StatsService struct {
	repo   ports.StatsRepository
	cache  ports.StatsCache
	logger zerolog.Logger
}

// NewStatsService wires the aggregate query behind a short-lived cache.
// cache may be nil, in which case every call hits the store.
func NewStatsService(repo ports.StatsRepository, cache ports.StatsCache, logger zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, cache: cache, logger: logger}
}

// Overview serves the admin dashboard aggregate, cache first. A cache
// failure is never fatal: the store remains the source of truth.
func (s *StatsService) Overview(ctx context.Context) (*ports.StatsOverview, error) {
	if s.cache != nil {
		overview, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed, falling back to store")
		} else if ok {
			return overview, nil
		}
	}

	overview, err := s.repo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, overview); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return overview, nil
}
