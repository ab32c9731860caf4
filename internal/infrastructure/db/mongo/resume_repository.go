package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

type ResumeRepository struct {
	col *mongo.Collection
}

func NewResumeRepository(db *mongo.Database) *ResumeRepository {
	return &ResumeRepository{col: db.Collection(collectionResume)}
}

func (r *ResumeRepository) Get(ctx context.Context) (*domain.Resume, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var res domain.Resume
	if err := r.col.FindOne(ctx, bson.M{"_id": domain.ResumeID}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResumeNotFound
		}
		return nil, fmt.Errorf("find resume: %w", err)
	}
	return &res, nil
}

func (r *ResumeRepository) Save(ctx context.Context, res *domain.Resume) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res.ID = domain.ResumeID
	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": domain.ResumeID}, res, opts); err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	return nil
}
