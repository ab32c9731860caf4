package ports

import (
	"context"
	"io"
	"time"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

type ProfileService interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	ReplaceProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	// Seed stores the built-in sample data when no profile exists yet.
	Seed(ctx context.Context) (bool, error)
}

// CreateProjectInput is a validated project payload. A nil DisplayOrder means
// "append after the existing projects"; a nil Featured defaults to true.
type CreateProjectInput struct {
	Title        string
	Company      string
	Type         domain.ProjectType
	Description  string
	Impact       []string
	Technologies []string
	Details      string
	Featured     *bool
	DisplayOrder *int
}

type ProjectService interface {
	ListProjects(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// RequestMeta is what the transport layer knows about the caller.
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
	Meta    RequestMeta
}

type ContactService interface {
	Submit(ctx context.Context, in SubmitContactInput) (*domain.ContactMessage, error)
	ListMessages(ctx context.Context) ([]*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*domain.ContactMessage, error)
}

// RecordEventInput is an analytics event before an id and timestamp are assigned.
type RecordEventInput struct {
	EventType domain.EventType
	Page      string
	Meta      RequestMeta
}

// PageVisits is one entry of the top pages ranking.
type PageVisits struct {
	Page   string `json:"page"`
	Visits int64  `json:"visits"`
}

// RecentVisit is a trimmed view of a visit event.
type RecentVisit struct {
	Page      string    `json:"page"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress"`
}

type AnalyticsStats struct {
	TotalVisits    int64                      `json:"totalVisits"`
	TotalDownloads int64                      `json:"totalDownloads"`
	TotalContacts  int64                      `json:"totalContacts"`
	ByEventType    map[domain.EventType]int64 `json:"byEventType"`
	ByPage         []domain.EventCount        `json:"byPage"`
	TopPages       []PageVisits               `json:"topPages"`
	RecentVisits   []RecentVisit              `json:"recentVisits"`
}

type AnalyticsService interface {
	// Record validates and persists an event synchronously.
	Record(ctx context.Context, in RecordEventInput) error
	Stats(ctx context.Context) (*AnalyticsStats, error)
}

// EventRecorder accepts analytics events for asynchronous persistence.
type EventRecorder interface {
	Enqueue(in RecordEventInput) bool
}

type CreateVisualizationInput struct {
	Title        string
	Description  string
	Metrics      []string
	ChartType    string
	ChartData    map[string]any
	IsActive     *bool
	DisplayOrder int
}

type VisualizationService interface {
	ListVisualizations(ctx context.Context, activeOnly bool) ([]*domain.Visualization, error)
	CreateVisualization(ctx context.Context, in CreateVisualizationInput) (*domain.Visualization, error)
	UpdateVisualization(ctx context.Context, id string, patch domain.VisualizationPatch) (*domain.Visualization, error)
	DeleteVisualization(ctx context.Context, id string) error
}

type UploadResumeInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type ResumeService interface {
	// Download returns the current resume and records a download event.
	Download(ctx context.Context, meta RequestMeta) (*domain.Resume, error)
	Upload(ctx context.Context, in UploadResumeInput) (*domain.Resume, error)
}

type AdminService interface {
	Login(ctx context.Context, password string) (*domain.AdminToken, error)
}
