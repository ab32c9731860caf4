package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

func TestProjectHandler_List_Filters(t *testing.T) {
	e := newTestEcho()
	var got ports.ProjectFilter
	h := NewProjectHandler(&stubProjectService{
		listFn: func(f ports.ProjectFilter) ([]*domain.Project, error) {
			got = f
			return []*domain.Project{{ID: "p1", Title: "Pipeline"}}, nil
		},
	})

	c, rec := jsonContext(e, http.MethodGet, "/projects?type=academic&featured=false", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Type != domain.ProjectAcademic || got.Featured == nil || *got.Featured {
		t.Fatalf("unexpected filter: %+v", got)
	}

	var body []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 1 || body[0]["title"] != "Pipeline" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestProjectHandler_List_RejectsBadFilter(t *testing.T) {
	e := newTestEcho()
	h := NewProjectHandler(&stubProjectService{
		listFn: func(ports.ProjectFilter) ([]*domain.Project, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	for _, target := range []string{"/projects?type=hobby", "/projects?featured=maybe"} {
		c, _ := jsonContext(e, http.MethodGet, target, "")
		if err := h.List(c); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", target, err)
		}
	}
}

func TestProjectHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	h := NewProjectHandler(&stubProjectService{
		createFn: func(in ports.CreateProjectInput) (*domain.Project, error) {
			if in.Type != domain.ProjectProfessional || in.DisplayOrder != nil || in.Featured != nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Project{ID: "p1", Title: in.Title, Type: in.Type, Featured: true}, nil
		},
	})

	body := `{"title":"Data Pipeline","company":"Acme","type":"professional","description":"ETL","impact":["-40% cost"],"technologies":["Go"]}`
	c, rec := jsonContext(e, http.MethodPost, "/projects", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, _ := resp.Data.(map[string]any)
	if !resp.Success || data["id"] != "p1" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestProjectHandler_Create_ValidationUsesJSONNames(t *testing.T) {
	e := newTestEcho()
	h := NewProjectHandler(&stubProjectService{
		createFn: func(ports.CreateProjectInput) (*domain.Project, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	body := `{"title":"X","company":"Acme","type":"hobby","description":"d","displayOrder":-1}`
	c, _ := jsonContext(e, http.MethodPost, "/projects", body)
	err := h.Create(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := map[string]string{}
	for _, f := range ve.Fields {
		fields[f.Field] = f.Reason
	}
	if _, ok := fields["type"]; !ok {
		t.Fatalf("expected type error, got %v", fields)
	}
	if _, ok := fields["displayOrder"]; !ok {
		t.Fatalf("expected displayOrder error, got %v", fields)
	}
}

func TestProjectHandler_Update_Partial(t *testing.T) {
	e := newTestEcho()
	h := NewProjectHandler(&stubProjectService{
		updateFn: func(id string, patch domain.ProjectPatch) (*domain.Project, error) {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			if patch.Title == nil || *patch.Title != "New" || patch.Company != nil || patch.Type != nil {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return &domain.Project{ID: id, Title: *patch.Title}, nil
		},
	})

	c, rec := jsonContext(e, http.MethodPut, "/projects/p1", `{"title":"New"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_Update_RejectsEmptyTitle(t *testing.T) {
	e := newTestEcho()
	h := NewProjectHandler(&stubProjectService{
		updateFn: func(string, domain.ProjectPatch) (*domain.Project, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	c, _ := jsonContext(e, http.MethodPut, "/projects/p1", `{"title":""}`)
	if err := h.Update(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProjectHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewProjectHandler(&stubProjectService{
		deleteFn: func(string) error { return domain.ErrProjectNotFound },
	})

	c, _ := jsonContext(e, http.MethodDelete, "/projects/missing", "")
	if err := h.Delete(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectHandler_Create_MalformedJSON(t *testing.T) {
	e := newTestEcho()
	h := NewProjectHandler(&stubProjectService{})

	c, _ := jsonContext(e, http.MethodPost, "/projects", `{"title":`)
	err := h.Create(c)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrValidation) {
		t.Fatalf("malformed JSON should be a bind error, got %v", err)
	}
}
