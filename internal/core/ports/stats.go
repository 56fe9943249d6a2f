package ports

import "context"

// StatsOverview is the admin dashboard aggregate.
type StatsOverview struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalProducts int64   `json:"totalProducts"`
	TotalBrands   int64   `json:"totalBrands"`
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalEarnings float64 `json:"totalEarnings"`
}

// StatsRepository computes the aggregate from the store.
type StatsRepository interface {
	Overview(ctx context.Context) (*StatsOverview, error)
}

// StatsCache is a short-lived cache in front of the aggregate query.
type StatsCache interface {
	Get(ctx context.Context) (*StatsOverview, bool, error)
	Set(ctx context.Context, overview *StatsOverview) error
}

// StatsService serves the dashboard aggregate, cache first.
type StatsService interface {
	Overview(ctx context.Context) (*StatsOverview, error)
}
