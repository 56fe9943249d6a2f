package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/key-tactile/commerce-api/internal/core/domain"
)

const collectionOrderEvents = "order_events"

type OrderEventRepository struct {
	col *mongo.Collection
}

func NewOrderEventRepository(db *mongo.Database) *OrderEventRepository {
	return &OrderEventRepository{col: db.Collection(collectionOrderEvents)}
}

type orderEventDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OrderID     string             `bson:"order_id"`
	OrderNumber string             `bson:"order_number"`
	Status      string             `bson:"status"`
	Actor       string             `bson:"actor"`
	Notes       string             `bson:"notes,omitempty"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func (r *OrderEventRepository) Insert(ctx context.Context, e *domain.OrderEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := orderEventDoc{
		OrderID:     e.OrderID,
		OrderNumber: e.OrderNumber,
		Status:      string(e.Status),
		Actor:       e.Actor,
		Notes:       e.Notes,
		Timestamp:   e.Timestamp,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order event: %w", err)
	}
	return nil
}

// ListByOrderID returns the audit trail of one order, oldest first.
func (r *OrderEventRepository) ListByOrderID(ctx context.Context, orderID string) ([]*domain.OrderEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"order_id": orderID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list order events: %w", err)
	}
	defer cur.Close(ctx)

	var events []*domain.OrderEvent
	for cur.Next(ctx) {
		var doc orderEventDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order event: %w", err)
		}
		events = append(events, &domain.OrderEvent{
			ID:          doc.ID.Hex(),
			OrderID:     doc.OrderID,
			OrderNumber: doc.OrderNumber,
			Status:      domain.OrderStatus(doc.Status),
			Actor:       doc.Actor,
			Notes:       doc.Notes,
			Timestamp:   doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list order events: %w", err)
	}
	return events, nil
}

// EnsureIndexes creates the order_id lookup index.
func (r *OrderEventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order_id", Value: 1}},
	})
	return err
}
