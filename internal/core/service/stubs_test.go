package service

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

type stubProfileRepo struct {
	profile   *domain.Profile
	upsertErr error
}

func (r *stubProfileRepo) Get(_ context.Context) (*domain.Profile, error) {
	if r.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	clone := *r.profile
	return &clone, nil
}

func (r *stubProfileRepo) Upsert(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	clone := *p
	if r.profile != nil {
		clone.CreatedAt = r.profile.CreatedAt
	}
	r.profile = &clone
	out := clone
	return &out, nil
}

func (r *stubProfileRepo) CreateIfAbsent(_ context.Context, p *domain.Profile) (bool, error) {
	if r.profile != nil {
		return false, nil
	}
	clone := *p
	r.profile = &clone
	return true, nil
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

type stubProjectRepo struct {
	byID      map[string]*domain.Project
	createErr error
	// capacity > 0 fails every Create once that many projects are stored.
	capacity int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.capacity > 0 && len(r.byID) >= r.capacity {
		return errors.New("insert failed")
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

// List mirrors the Mongo sort: display_order, created_at, _id.
func (r *stubProjectRepo) List(_ context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	out := []*domain.Project{}
	for _, p := range r.byID {
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, patch domain.ProjectPatch, updatedAt time.Time) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	patch.Apply(p)
	p.UpdatedAt = updatedAt
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubProjectRepo) NextDisplayOrder(_ context.Context) (int, error) {
	if len(r.byID) == 0 {
		return 0, nil
	}
	highest := -1
	for _, p := range r.byID {
		if p.DisplayOrder > highest {
			highest = p.DisplayOrder
		}
	}
	return highest + 1, nil
}

// ---------------------------------------------------------------------------
// Contact
// ---------------------------------------------------------------------------

type stubContactRepo struct {
	messages  []*domain.ContactMessage
	createErr error
}

func (r *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *m
	r.messages = append(r.messages, &clone)
	return nil
}

func (r *stubContactRepo) List(_ context.Context) ([]*domain.ContactMessage, error) {
	out := make([]*domain.ContactMessage, 0, len(r.messages))
	for i := len(r.messages) - 1; i >= 0; i-- {
		clone := *r.messages[i]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubContactRepo) MarkRead(_ context.Context, id string) (*domain.ContactMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			m.IsRead = true
			clone := *m
			return &clone, nil
		}
	}
	return nil, domain.ErrMessageNotFound
}

func (r *stubContactRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.messages)), nil
}

// stubLimiter is a fixed-window counter without expiry.
type stubLimiter struct {
	hits map[string]int
	err  error
}

func newStubLimiter() *stubLimiter {
	return &stubLimiter{hits: make(map[string]int)}
}

func (l *stubLimiter) Allow(_ context.Context, key string, limit int, _ time.Duration) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	l.hits[key]++
	return l.hits[key] <= limit, nil
}

type stubRecorder struct {
	mu     sync.Mutex
	events []ports.RecordEventInput
}

func (r *stubRecorder) Enqueue(in ports.RecordEventInput) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, in)
	return true
}

type stubNotifier struct {
	err      error
	notified []string
}

func (n *stubNotifier) NotifyContact(_ context.Context, m *domain.ContactMessage) error {
	n.notified = append(n.notified, m.ID)
	return n.err
}

// ---------------------------------------------------------------------------
// Analytics
// ---------------------------------------------------------------------------

type stubAnalyticsRepo struct {
	events []*domain.AnalyticsEvent
}

func (r *stubAnalyticsRepo) Insert(_ context.Context, e *domain.AnalyticsEvent) error {
	clone := *e
	r.events = append(r.events, &clone)
	return nil
}

func (r *stubAnalyticsRepo) CountByTypeAndPage(_ context.Context) ([]domain.EventCount, error) {
	type key struct {
		t domain.EventType
		p string
	}
	counts := map[key]int64{}
	var order []key
	for _, e := range r.events {
		k := key{e.EventType, e.Page}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]domain.EventCount, 0, len(order))
	for _, k := range order {
		out = append(out, domain.EventCount{EventType: k.t, Page: k.p, Count: counts[k]})
	}
	return out, nil
}

func (r *stubAnalyticsRepo) Recent(_ context.Context, t domain.EventType, limit int) ([]*domain.AnalyticsEvent, error) {
	out := []*domain.AnalyticsEvent{}
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		if r.events[i].EventType == t {
			clone := *r.events[i]
			out = append(out, &clone)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Visualizations
// ---------------------------------------------------------------------------

type stubVisualizationRepo struct {
	items []*domain.Visualization
}

func (r *stubVisualizationRepo) Create(_ context.Context, v *domain.Visualization) error {
	clone := *v
	r.items = append(r.items, &clone)
	return nil
}

func (r *stubVisualizationRepo) List(_ context.Context, activeOnly bool) ([]*domain.Visualization, error) {
	out := []*domain.Visualization{}
	for _, v := range r.items {
		if activeOnly && !v.IsActive {
			continue
		}
		clone := *v
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *stubVisualizationRepo) Update(_ context.Context, id string, patch domain.VisualizationPatch, updatedAt time.Time) (*domain.Visualization, error) {
	for _, v := range r.items {
		if v.ID == id {
			patch.Apply(v)
			v.UpdatedAt = updatedAt
			clone := *v
			return &clone, nil
		}
	}
	return nil, domain.ErrVisualizationNotFound
}

func (r *stubVisualizationRepo) Delete(_ context.Context, id string) error {
	for i, v := range r.items {
		if v.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrVisualizationNotFound
}

// ---------------------------------------------------------------------------
// Resume
// ---------------------------------------------------------------------------

type stubResumeRepo struct {
	resume *domain.Resume
}

func (r *stubResumeRepo) Get(_ context.Context) (*domain.Resume, error) {
	if r.resume == nil {
		return nil, domain.ErrResumeNotFound
	}
	clone := *r.resume
	return &clone, nil
}

func (r *stubResumeRepo) Save(_ context.Context, res *domain.Resume) error {
	clone := *res
	r.resume = &clone
	return nil
}

type stubStorage struct {
	uploaded []byte
	folder   string
	publicID string
	err      error
}

func (s *stubStorage) Upload(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.uploaded, s.folder, s.publicID = b, folder, publicID
	return "https://cdn.example.com/" + folder + "/" + publicID + ".pdf", nil
}
