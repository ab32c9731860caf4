package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

const (
	topPagesLimit     = 5
	recentVisitsLimit = 10
	defaultPage       = "/"
)

type AnalyticsService struct {
	events   ports.AnalyticsRepository
	contacts ports.ContactRepository
	logger   zerolog.Logger
}

func NewAnalyticsService(events ports.AnalyticsRepository, contacts ports.ContactRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{events: events, contacts: contacts, logger: logger}
}

// Record persists a single analytics event.
func (s *AnalyticsService) Record(ctx context.Context, in ports.RecordEventInput) error {
	if !in.EventType.Valid() {
		return domain.NewValidationError("eventType", "must be one of: visit download contact")
	}

	page := in.Page
	if page == "" {
		page = defaultPage
	}

	return s.events.Insert(ctx, &domain.AnalyticsEvent{
		ID:        newID(),
		EventType: in.EventType,
		Page:      page,
		IPAddress: in.Meta.IPAddress,
		UserAgent: in.Meta.UserAgent,
		Referrer:  in.Meta.Referrer,
		Timestamp: time.Now().UTC(),
	})
}

// Stats aggregates every recorded event by type and page.
func (s *AnalyticsService) Stats(ctx context.Context) (*ports.AnalyticsStats, error) {
	counts, err := s.events.CountByTypeAndPage(ctx)
	if err != nil {
		return nil, err
	}

	totalContacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.events.Recent(ctx, domain.EventVisit, recentVisitsLimit)
	if err != nil {
		return nil, err
	}

	stats := &ports.AnalyticsStats{
		TotalContacts: totalContacts,
		ByEventType:   make(map[domain.EventType]int64),
		ByPage:        make([]domain.EventCount, 0, len(counts)),
		TopPages:      []ports.PageVisits{},
		RecentVisits:  make([]ports.RecentVisit, 0, len(recent)),
	}

	for _, c := range counts {
		if c.Page == "" {
			c.Page = defaultPage
		}
		stats.ByEventType[c.EventType] += c.Count
		stats.ByPage = append(stats.ByPage, c)
		if c.EventType == domain.EventVisit {
			stats.TopPages = append(stats.TopPages, ports.PageVisits{Page: c.Page, Visits: c.Count})
		}
	}
	stats.TotalVisits = stats.ByEventType[domain.EventVisit]
	stats.TotalDownloads = stats.ByEventType[domain.EventDownload]

	sort.SliceStable(stats.ByPage, func(i, j int) bool {
		if stats.ByPage[i].Count != stats.ByPage[j].Count {
			return stats.ByPage[i].Count > stats.ByPage[j].Count
		}
		if stats.ByPage[i].EventType != stats.ByPage[j].EventType {
			return stats.ByPage[i].EventType < stats.ByPage[j].EventType
		}
		return stats.ByPage[i].Page < stats.ByPage[j].Page
	})
	sort.SliceStable(stats.TopPages, func(i, j int) bool {
		if stats.TopPages[i].Visits != stats.TopPages[j].Visits {
			return stats.TopPages[i].Visits > stats.TopPages[j].Visits
		}
		return stats.TopPages[i].Page < stats.TopPages[j].Page
	})
	if len(stats.TopPages) > topPagesLimit {
		stats.TopPages = stats.TopPages[:topPagesLimit]
	}

	for _, e := range recent {
		stats.RecentVisits = append(stats.RecentVisits, ports.RecentVisit{
			Page:      e.Page,
			Timestamp: e.Timestamp,
			IPAddress: e.IPAddress,
		})
	}

	return stats, nil
}
