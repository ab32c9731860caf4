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
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

// projectSort orders by display_order with creation order as tie-breaker.
// Ids are UUIDv7 so _id settles ties within the same millisecond.
var projectSort = bson.D{
	{Key: "display_order", Value: 1},
	{Key: "created_at", Value: 1},
	{Key: "_id", Value: 1},
}

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Featured != nil {
		filter["featured"] = *f.Featured
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(projectSort))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := []*domain.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, patch domain.ProjectPatch, updatedAt time.Time) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := projectPatchFields(patch)
	set["updated_at"] = updatedAt

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p domain.Project
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) NextDisplayOrder(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "display_order", Value: -1}}).
		SetProjection(bson.M{"display_order": 1})

	var last struct {
		DisplayOrder int `bson:"display_order"`
	}
	if err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&last); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, fmt.Errorf("find last display order: %w", err)
	}
	return last.DisplayOrder + 1, nil
}

// projectPatchFields maps the non-nil patch fields to their BSON names.
func projectPatchFields(p domain.ProjectPatch) bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Company != nil {
		set["company"] = *p.Company
	}
	if p.Type != nil {
		set["type"] = *p.Type
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Impact != nil {
		set["impact"] = *p.Impact
	}
	if p.Technologies != nil {
		set["technologies"] = *p.Technologies
	}
	if p.Details != nil {
		set["details"] = *p.Details
	}
	if p.Featured != nil {
		set["featured"] = *p.Featured
	}
	if p.DisplayOrder != nil {
		set["display_order"] = *p.DisplayOrder
	}
	return set
}
