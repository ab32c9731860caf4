package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) ListProjects(ctx context.Context, filter ports.ProjectFilter) ([]*domain.Project, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.NewValidationError("type", "must be one of: professional academic")
	}
	return s.repo.List(ctx, filter)
}

func (s *ProjectService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateProject stores a new project. Without an explicit display order the
// project goes after every existing one.
func (s *ProjectService) CreateProject(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if !in.Type.Valid() {
		return nil, domain.NewValidationError("type", "must be one of: professional academic")
	}

	order := 0
	if in.DisplayOrder != nil {
		order = *in.DisplayOrder
	} else {
		next, err := s.repo.NextDisplayOrder(ctx)
		if err != nil {
			return nil, err
		}
		order = next
	}

	featured := true
	if in.Featured != nil {
		featured = *in.Featured
	}

	now := time.Now().UTC()
	p := &domain.Project{
		ID:           newID(),
		Title:        in.Title,
		Company:      in.Company,
		Type:         in.Type,
		Description:  in.Description,
		Impact:       nonNil(in.Impact),
		Technologies: nonNil(in.Technologies),
		Details:      in.Details,
		Featured:     featured,
		DisplayOrder: order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("title", in.Title).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", p.ID).Int("display_order", p.DisplayOrder).Msg("project created")
	return p, nil
}

// UpdateProject applies a partial update; fields absent from patch keep their value.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, domain.NewValidationError("type", "must be one of: professional academic")
	}

	updated, err := s.repo.Update(ctx, id, patch, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", id).Msg("project updated")
	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

// nonNil keeps empty lists rendering as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
