package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

func intPtr(i int) *int                                { return &i }
func boolPtr(b bool) *bool                             { return &b }
func strPtr(s string) *string                          { return &s }
func typePtr(t domain.ProjectType) *domain.ProjectType { return &t }

func sampleProject(title string) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Title:        title,
		Company:      "Acme",
		Type:         domain.ProjectProfessional,
		Description:  "Dashboards for claims",
		Impact:       []string{"33% faster settlement"},
		Technologies: []string{"Python", "SQL"},
		Details:      "Long form details",
	}
}

func TestProjectService_Create_ThenGetReturnsInputPlusID(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)

	in := sampleProject("Claims360")
	in.Featured = boolPtr(false)
	in.DisplayOrder = intPtr(7)

	created, err := svc.CreateProject(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := svc.GetProject(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	want := &domain.Project{
		ID:           created.ID,
		Title:        in.Title,
		Company:      in.Company,
		Type:         in.Type,
		Description:  in.Description,
		Impact:       in.Impact,
		Technologies: in.Technologies,
		Details:      in.Details,
		Featured:     false,
		DisplayOrder: 7,
		CreatedAt:    created.CreatedAt,
		UpdatedAt:    created.UpdatedAt,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("stored project mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestProjectService_Create_Defaults(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)

	in := sampleProject("No lists")
	in.Impact = nil
	in.Technologies = nil

	p, err := svc.CreateProject(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Featured {
		t.Error("featured should default to true")
	}
	if p.DisplayOrder != 0 {
		t.Errorf("first project should get display order 0, got %d", p.DisplayOrder)
	}
	if p.Impact == nil || p.Technologies == nil {
		t.Error("list fields must never be nil")
	}
	if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Errorf("timestamps not initialised: %v %v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestProjectService_Create_DisplayOrderDefaultsToInsertionOrder(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)
	ctx := context.Background()

	first := sampleProject("first")
	first.DisplayOrder = intPtr(4)
	if _, err := svc.CreateProject(ctx, first); err != nil {
		t.Fatal(err)
	}

	second, err := svc.CreateProject(ctx, sampleProject("second"))
	if err != nil {
		t.Fatal(err)
	}
	if second.DisplayOrder != 5 {
		t.Errorf("expected display order 5, got %d", second.DisplayOrder)
	}
}

func TestProjectService_Create_InvalidType(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)

	in := sampleProject("bad")
	in.Type = "hobby"

	_, err := svc.CreateProject(context.Background(), in)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("nothing should be stored on validation failure")
	}
}

func TestProjectService_Create_RepoError(t *testing.T) {
	repo := newStubProjectRepo()
	repo.createErr = errors.New("connection reset")
	svc := NewProjectService(repo, discardLogger)

	if _, err := svc.CreateProject(context.Background(), sampleProject("x")); err == nil {
		t.Fatal("expected error")
	}
}

func TestProjectService_Update_KeepsUnspecifiedFields(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)
	ctx := context.Background()

	created, err := svc.CreateProject(ctx, sampleProject("Original"))
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateProject(ctx, created.ID, domain.ProjectPatch{
		Title:    strPtr("Renamed"),
		Featured: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "Renamed" || updated.Featured {
		t.Errorf("patched fields not applied: %+v", updated)
	}
	if updated.Company != created.Company ||
		updated.Description != created.Description ||
		updated.Details != created.Details ||
		updated.Type != created.Type ||
		updated.DisplayOrder != created.DisplayOrder ||
		!reflect.DeepEqual(updated.Impact, created.Impact) ||
		!reflect.DeepEqual(updated.Technologies, created.Technologies) {
		t.Errorf("unspecified fields changed\nbefore: %+v\n after: %+v", created, updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("created_at must not change on update")
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), discardLogger)

	_, err := svc.UpdateProject(context.Background(), "missing", domain.ProjectPatch{Title: strPtr("x")})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_Update_InvalidType(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)
	created, _ := svc.CreateProject(context.Background(), sampleProject("x"))

	_, err := svc.UpdateProject(context.Background(), created.ID, domain.ProjectPatch{Type: typePtr("side")})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.byID[created.ID].Type != domain.ProjectProfessional {
		t.Fatal("project must be left untouched")
	}
}

func TestProjectService_Delete_Twice(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)
	ctx := context.Background()

	created, _ := svc.CreateProject(ctx, sampleProject("doomed"))

	if err := svc.DeleteProject(ctx, created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteProject(ctx, created.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("second delete: expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_List_OrderedByDisplayOrderThenCreation(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)
	ctx := context.Background()

	for _, tc := range []struct {
		title string
		order int
	}{
		{"b1", 1}, {"c2", 2}, {"b2", 1}, {"a0", 0}, {"b3", 1},
	} {
		in := sampleProject(tc.title)
		in.DisplayOrder = intPtr(tc.order)
		if _, err := svc.CreateProject(ctx, in); err != nil {
			t.Fatal(err)
		}
	}

	list, err := svc.ListProjects(ctx, ports.ProjectFilter{})
	if err != nil {
		t.Fatal(err)
	}

	var titles []string
	for _, p := range list {
		titles = append(titles, p.Title)
	}
	want := []string{"a0", "b1", "b2", "b3", "c2"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("expected %v, got %v", want, titles)
	}
}

func TestProjectService_List_Filters(t *testing.T) {
	repo := newStubProjectRepo()
	svc := NewProjectService(repo, discardLogger)
	ctx := context.Background()

	academic := sampleProject("thesis")
	academic.Type = domain.ProjectAcademic
	academic.Featured = boolPtr(false)
	_, _ = svc.CreateProject(ctx, academic)
	_, _ = svc.CreateProject(ctx, sampleProject("work"))

	list, err := svc.ListProjects(ctx, ports.ProjectFilter{Type: domain.ProjectAcademic})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Title != "thesis" {
		t.Fatalf("type filter: unexpected result %+v", list)
	}

	list, _ = svc.ListProjects(ctx, ports.ProjectFilter{Featured: boolPtr(true)})
	if len(list) != 1 || list[0].Title != "work" {
		t.Fatalf("featured filter: unexpected result %+v", list)
	}

	if _, err := svc.ListProjects(ctx, ports.ProjectFilter{Type: "hobby"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for unknown type, got %v", err)
	}
}
