package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/key-tactile/commerce-api/internal/core/domain"
	"github.com/key-tactile/commerce-api/internal/core/ports"
)

// StatsRepository computes the admin dashboard aggregate across collections.
type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Overview(ctx context.Context) (*ports.StatsOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		overview ports.StatsOverview
		err      error
	)

	if overview.TotalUsers, err = r.db.Collection(collectionUsers).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if overview.TotalProducts, err = r.db.Collection(collectionProducts).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if overview.TotalBrands, err = r.db.Collection(collectionBrands).CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count brands: %w", err)
	}

	orders := r.db.Collection(collectionOrders)
	if overview.TotalOrders, err = orders.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	pendingFilter := bson.M{"status": string(domain.OrderPending)}
	if overview.PendingOrders, err = orders.CountDocuments(ctx, pendingFilter); err != nil {
		return nil, fmt.Errorf("count pending orders: %w", err)
	}

	// Earnings exclude cancelled orders.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$ne": string(domain.OrderCancelled)}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}}},
	}

	cur, err := orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate earnings: %w", err)
	}
	defer cur.Close(ctx)

	if cur.Next(ctx) {
		var row struct {
			Total float64 `bson:"total"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode earnings: %w", err)
		}
		overview.TotalEarnings = row.Total
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("aggregate earnings: %w", err)
	}

	return &overview, nil
}
