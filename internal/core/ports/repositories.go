package ports

import (
	"context"
	"time"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

// ProfileRepository persists the singleton profile document.
type ProfileRepository interface {
	// Get returns domain.ErrProfileNotFound when the profile was never seeded.
	Get(ctx context.Context) (*domain.Profile, error)
	// Upsert replaces the profile wholesale, keeping the original CreatedAt.
	Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	// CreateIfAbsent inserts p only when no profile exists and reports whether it did.
	CreateIfAbsent(ctx context.Context, p *domain.Profile) (bool, error)
}

// ProjectFilter narrows a project listing. Nil/empty fields do not filter.
type ProjectFilter struct {
	Type     domain.ProjectType
	Featured *bool
}

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects ordered by display_order, then creation order.
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	// Update applies patch and returns the stored document after the update.
	Update(ctx context.Context, id string, patch domain.ProjectPatch, updatedAt time.Time) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	// NextDisplayOrder is one past the highest display_order in use (0 when empty).
	NextDisplayOrder(ctx context.Context) (int, error)
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) error
	// List returns messages newest first.
	List(ctx context.Context) ([]*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

// AnalyticsRepository is append-only storage for analytics events.
type AnalyticsRepository interface {
	Insert(ctx context.Context, e *domain.AnalyticsEvent) error
	// CountByTypeAndPage groups every event by (event_type, page).
	CountByTypeAndPage(ctx context.Context) ([]domain.EventCount, error)
	// Recent returns the newest events of the given type.
	Recent(ctx context.Context, eventType domain.EventType, limit int) ([]*domain.AnalyticsEvent, error)
}

// VisualizationRepository persists showcase charts.
type VisualizationRepository interface {
	Create(ctx context.Context, v *domain.Visualization) error
	List(ctx context.Context, activeOnly bool) ([]*domain.Visualization, error)
	Update(ctx context.Context, id string, patch domain.VisualizationPatch, updatedAt time.Time) (*domain.Visualization, error)
	Delete(ctx context.Context, id string) error
}

// ResumeRepository persists the metadata of the published resume.
type ResumeRepository interface {
	Get(ctx context.Context) (*domain.Resume, error)
	Save(ctx context.Context, r *domain.Resume) error
}
