package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.IPExtractor = echo.ExtractIPDirect()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubProfileService struct {
	profile  *domain.Profile
	replaced *domain.Profile
}

func (s *stubProfileService) GetProfile(context.Context) (*domain.Profile, error) {
	if s.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *stubProfileService) ReplaceProfile(_ context.Context, p domain.Profile) (*domain.Profile, error) {
	s.replaced = &p
	return &p, nil
}

func (s *stubProfileService) Seed(context.Context) (bool, error) { return false, nil }

type stubProjectService struct {
	listFn   func(ports.ProjectFilter) ([]*domain.Project, error)
	createFn func(ports.CreateProjectInput) (*domain.Project, error)
	updateFn func(string, domain.ProjectPatch) (*domain.Project, error)
	deleteFn func(string) error
}

func (s *stubProjectService) ListProjects(_ context.Context, f ports.ProjectFilter) ([]*domain.Project, error) {
	return s.listFn(f)
}

func (s *stubProjectService) GetProject(_ context.Context, id string) (*domain.Project, error) {
	return nil, domain.ErrProjectNotFound
}

func (s *stubProjectService) CreateProject(_ context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	return s.createFn(in)
}

func (s *stubProjectService) UpdateProject(_ context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	return s.updateFn(id, patch)
}

func (s *stubProjectService) DeleteProject(_ context.Context, id string) error {
	return s.deleteFn(id)
}

type stubContactService struct {
	submitted []ports.SubmitContactInput
	err       error
}

func (s *stubContactService) Submit(_ context.Context, in ports.SubmitContactInput) (*domain.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.submitted = append(s.submitted, in)
	return &domain.ContactMessage{ID: "msg-1", Name: in.Name, Email: in.Email}, nil
}

func (s *stubContactService) ListMessages(context.Context) ([]*domain.ContactMessage, error) {
	return []*domain.ContactMessage{}, nil
}

func (s *stubContactService) MarkRead(_ context.Context, id string) (*domain.ContactMessage, error) {
	return nil, domain.ErrMessageNotFound
}

type stubRecorder struct {
	events []ports.RecordEventInput
}

func (s *stubRecorder) Enqueue(in ports.RecordEventInput) bool {
	s.events = append(s.events, in)
	return true
}

type stubResumeService struct {
	uploaded *ports.UploadResumeInput
	content  string
}

func (s *stubResumeService) Download(context.Context, ports.RequestMeta) (*domain.Resume, error) {
	return nil, domain.ErrResumeNotFound
}

func (s *stubResumeService) Upload(_ context.Context, in ports.UploadResumeInput) (*domain.Resume, error) {
	b, err := io.ReadAll(in.Content)
	if err != nil {
		return nil, err
	}
	s.uploaded = &in
	s.content = string(b)
	return &domain.Resume{Filename: in.Filename, URL: "https://cdn.example/resume.pdf", Size: in.Size}, nil
}
