package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

// AnalyticsRepository is the append-only analytics event log.
type AnalyticsRepository struct {
	col *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{col: db.Collection(collectionAnalytics)}
}

func (r *AnalyticsRepository) Insert(ctx context.Context, e *domain.AnalyticsEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

func (r *AnalyticsRepository) CountByTypeAndPage(ctx context.Context) ([]domain.EventCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "event_type", Value: "$event_type"},
				{Key: "page", Value: "$page"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "event_type", Value: "$_id.event_type"},
			{Key: "page", Value: "$_id.page"},
			{Key: "count", Value: 1},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate analytics: %w", err)
	}

	counts := []domain.EventCount{}
	if err := cur.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode analytics counts: %w", err)
	}
	return counts, nil
}

func (r *AnalyticsRepository) Recent(ctx context.Context, eventType domain.EventType, limit int) ([]*domain.AnalyticsEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{"event_type": eventType}, opts)
	if err != nil {
		return nil, fmt.Errorf("find recent events: %w", err)
	}

	events := []*domain.AnalyticsEvent{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode recent events: %w", err)
	}
	return events, nil
}
