package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

type VisualizationService struct {
	repo   ports.VisualizationRepository
	logger zerolog.Logger
}

func NewVisualizationService(repo ports.VisualizationRepository, logger zerolog.Logger) *VisualizationService {
	return &VisualizationService{repo: repo, logger: logger}
}

func (s *VisualizationService) ListVisualizations(ctx context.Context, activeOnly bool) ([]*domain.Visualization, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *VisualizationService) CreateVisualization(ctx context.Context, in ports.CreateVisualizationInput) (*domain.Visualization, error) {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	data := in.ChartData
	if data == nil {
		data = map[string]any{}
	}

	now := time.Now().UTC()
	v := &domain.Visualization{
		ID:           newID(),
		Title:        in.Title,
		Description:  in.Description,
		Metrics:      nonNil(in.Metrics),
		ChartType:    in.ChartType,
		ChartData:    data,
		IsActive:     active,
		DisplayOrder: in.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create visualization")
		return nil, err
	}

	s.logger.Info().Str("visualization_id", v.ID).Msg("visualization created")
	return v, nil
}

func (s *VisualizationService) UpdateVisualization(ctx context.Context, id string, patch domain.VisualizationPatch) (*domain.Visualization, error) {
	return s.repo.Update(ctx, id, patch, time.Now().UTC())
}

func (s *VisualizationService) DeleteVisualization(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("visualization_id", id).Msg("visualization deleted")
	return nil
}
