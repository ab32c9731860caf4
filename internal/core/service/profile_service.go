package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

//go:embed seed/portfolio.json
var seedJSON []byte

type seedData struct {
	Profile  domain.Profile             `json:"profile"`
	Projects []ports.CreateProjectInput `json:"projects"`
}

type ProfileService struct {
	repo     ports.ProfileRepository
	projects ports.ProjectService
	logger   zerolog.Logger
}

// NewProfileService wires the profile use cases. projects is only used by Seed
// and may be nil when seeding is disabled.
func NewProfileService(repo ports.ProfileRepository, projects ports.ProjectService, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, projects: projects, logger: logger}
}

func (s *ProfileService) GetProfile(ctx context.Context) (*domain.Profile, error) {
	return s.repo.Get(ctx)
}

// ReplaceProfile overwrites the whole profile. The id is always the fixed
// singleton key, whatever the payload carried.
func (s *ProfileService) ReplaceProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	now := time.Now().UTC()
	p.ID = domain.ProfileID
	p.CreatedAt = now
	p.UpdatedAt = now

	updated, err := s.repo.Upsert(ctx, &p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to replace profile")
		return nil, err
	}
	s.logger.Info().Str("name", updated.Personal.Name).Msg("profile replaced")
	return updated, nil
}

// Seed stores the embedded sample profile and projects when the database has
// no profile yet. The profile goes in last and marks the seed as complete;
// projects already stored under a seed title are skipped, so a seed that
// failed halfway is finished by the next start without duplicates.
func (s *ProfileService) Seed(ctx context.Context) (bool, error) {
	_, err := s.repo.Get(ctx)
	switch {
	case err == nil:
		s.logger.Debug().Msg("profile already exists, skipping seed")
		return false, nil
	case !errors.Is(err, domain.ErrProfileNotFound):
		return false, fmt.Errorf("seed: %w", err)
	}

	var data seedData
	if err := json.Unmarshal(seedJSON, &data); err != nil {
		return false, fmt.Errorf("decode seed data: %w", err)
	}

	inserted := 0
	if s.projects != nil {
		existing, err := s.projects.ListProjects(ctx, ports.ProjectFilter{})
		if err != nil {
			return false, fmt.Errorf("seed: list projects: %w", err)
		}
		stored := make(map[string]bool, len(existing))
		for _, p := range existing {
			stored[p.Title] = true
		}
		for _, in := range data.Projects {
			if stored[in.Title] {
				continue
			}
			if _, err := s.projects.CreateProject(ctx, in); err != nil {
				return false, fmt.Errorf("seed project %q: %w", in.Title, err)
			}
			inserted++
		}
	}

	now := time.Now().UTC()
	data.Profile.ID = domain.ProfileID
	data.Profile.CreatedAt = now
	data.Profile.UpdatedAt = now

	created, err := s.repo.CreateIfAbsent(ctx, &data.Profile)
	if err != nil {
		return false, fmt.Errorf("seed profile: %w", err)
	}

	s.logger.Info().Int("projects", inserted).Bool("profile", created).Msg("seeded initial portfolio data")
	return created, nil
}
