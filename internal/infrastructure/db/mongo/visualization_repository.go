package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

type VisualizationRepository struct {
	col *mongo.Collection
}

func NewVisualizationRepository(db *mongo.Database) *VisualizationRepository {
	return &VisualizationRepository{col: db.Collection(collectionVisualizations)}
}

func (r *VisualizationRepository) Create(ctx context.Context, v *domain.Visualization) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("insert visualization: %w", err)
	}
	return nil
}

func (r *VisualizationRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Visualization, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list visualizations: %w", err)
	}

	items := []*domain.Visualization{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode visualizations: %w", err)
	}
	return items, nil
}

func (r *VisualizationRepository) Update(ctx context.Context, id string, patch domain.VisualizationPatch, updatedAt time.Time) (*domain.Visualization, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": updatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Metrics != nil {
		set["metrics"] = *patch.Metrics
	}
	if patch.ChartType != nil {
		set["chart_type"] = *patch.ChartType
	}
	if patch.ChartData != nil {
		set["chart_data"] = *patch.ChartData
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if patch.DisplayOrder != nil {
		set["display_order"] = *patch.DisplayOrder
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var v domain.Visualization
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVisualizationNotFound
		}
		return nil, fmt.Errorf("update visualization: %w", err)
	}
	return &v, nil
}

func (r *VisualizationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete visualization: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVisualizationNotFound
	}
	return nil
}
