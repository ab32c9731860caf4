package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

// In-memory repositories backing the router tests.

type memProfiles struct {
	mu sync.Mutex
	p  *domain.Profile
}

func (r *memProfiles) Get(context.Context) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.p == nil {
		return nil, domain.ErrProfileNotFound
	}
	out := *r.p
	return &out, nil
}

func (r *memProfiles) Upsert(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := *p
	if r.p != nil {
		next.CreatedAt = r.p.CreatedAt
	}
	r.p = &next
	out := next
	return &out, nil
}

func (r *memProfiles) CreateIfAbsent(_ context.Context, p *domain.Profile) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.p != nil {
		return false, nil
	}
	next := *p
	r.p = &next
	return true, nil
}

type memProjects struct {
	mu   sync.Mutex
	byID map[string]*domain.Project
}

func (r *memProjects) Create(_ context.Context, p *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := *p
	r.byID[p.ID] = &next
	return nil
}

func (r *memProjects) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	out := *p
	return &out, nil
}

func (r *memProjects) List(_ context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Project{}
	for _, p := range r.byID {
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (r *memProjects) Update(_ context.Context, id string, patch domain.ProjectPatch, updatedAt time.Time) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	patch.Apply(p)
	p.UpdatedAt = updatedAt
	out := *p
	return &out, nil
}

func (r *memProjects) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memProjects) NextDisplayOrder(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := 0
	for _, p := range r.byID {
		if p.DisplayOrder >= next {
			next = p.DisplayOrder + 1
		}
	}
	return next, nil
}

type memContacts struct {
	mu   sync.Mutex
	msgs []*domain.ContactMessage
}

func (r *memContacts) Create(_ context.Context, m *domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := *m
	r.msgs = append(r.msgs, &next)
	return nil
}

func (r *memContacts) List(context.Context) ([]*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.ContactMessage, 0, len(r.msgs))
	for i := len(r.msgs) - 1; i >= 0; i-- {
		cp := *r.msgs[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memContacts) MarkRead(_ context.Context, id string) (*domain.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.msgs {
		if m.ID == id {
			m.IsRead = true
			out := *m
			return &out, nil
		}
	}
	return nil, domain.ErrMessageNotFound
}

func (r *memContacts) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.msgs)), nil
}

type memEvents struct {
	mu     sync.Mutex
	events []*domain.AnalyticsEvent
}

func (r *memEvents) Insert(_ context.Context, e *domain.AnalyticsEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := *e
	r.events = append(r.events, &next)
	return nil
}

func (r *memEvents) CountByTypeAndPage(context.Context) ([]domain.EventCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	type key struct {
		t    domain.EventType
		page string
	}
	counts := map[key]int64{}
	for _, e := range r.events {
		counts[key{e.EventType, e.Page}]++
	}
	out := make([]domain.EventCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.EventCount{EventType: k.t, Page: k.page, Count: n})
	}
	return out, nil
}

func (r *memEvents) Recent(_ context.Context, t domain.EventType, limit int) ([]*domain.AnalyticsEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.AnalyticsEvent{}
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		if r.events[i].EventType == t {
			cp := *r.events[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memVisualizations struct {
	mu    sync.Mutex
	items []*domain.Visualization
}

func (r *memVisualizations) Create(_ context.Context, v *domain.Visualization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := *v
	r.items = append(r.items, &next)
	return nil
}

func (r *memVisualizations) List(_ context.Context, activeOnly bool) ([]*domain.Visualization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Visualization{}
	for _, v := range r.items {
		if activeOnly && !v.IsActive {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *memVisualizations) Update(_ context.Context, id string, patch domain.VisualizationPatch, updatedAt time.Time) (*domain.Visualization, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.ID == id {
			patch.Apply(v)
			v.UpdatedAt = updatedAt
			out := *v
			return &out, nil
		}
	}
	return nil, domain.ErrVisualizationNotFound
}

func (r *memVisualizations) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.items {
		if v.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrVisualizationNotFound
}

type memResume struct {
	mu sync.Mutex
	r  *domain.Resume
}

func (m *memResume) Get(context.Context) (*domain.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.r == nil {
		return nil, domain.ErrResumeNotFound
	}
	out := *m.r
	return &out, nil
}

func (m *memResume) Save(_ context.Context, r *domain.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := *r
	m.r = &next
	return nil
}

// memLimiter counts hits per key and never expires them.
type memLimiter struct {
	mu   sync.Mutex
	hits map[string]int
}

func (l *memLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hits[key]++
	return l.hits[key] <= limit, nil
}

// syncRecorder writes events inline so tests can assert on them immediately.
type syncRecorder struct {
	svc ports.AnalyticsService
}

func (r *syncRecorder) Enqueue(in ports.RecordEventInput) bool {
	return r.svc.Record(context.Background(), in) == nil
}
