package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

// ProjectHandler handles HTTP requests for portfolio projects.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /projects.
//
// @Summary      List projects
// @Description  Projects ordered by displayOrder, then creation order.
// @Tags         projects
// @Produce      json
// @Param        type      query     string  false  "professional or academic"
// @Param        featured  query     bool    false  "Only featured (true) or non-featured (false) projects"
// @Success      200       {array}   domain.Project
// @Failure      400       {object}  ErrorResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	filter, err := projectFilter(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListProjects(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

func projectFilter(c echo.Context) (ports.ProjectFilter, error) {
	var f ports.ProjectFilter
	if t := c.QueryParam("type"); t != "" {
		f.Type = domain.ProjectType(t)
		if !f.Type.Valid() {
			return f, domain.NewValidationError("type", "must be one of: professional academic")
		}
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return f, domain.NewValidationError("featured", "must be a boolean")
		}
		f.Featured = &featured
	}
	return f, nil
}

// Get handles GET /projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	p, err := h.service.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  Envelope{data=domain.Project}
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	p, err := h.service.CreateProject(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Project created successfully", p)
}

// Update handles PUT /projects/:id.
//
// @Summary      Update a project
// @Description  Only the fields present in the body are changed.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  Envelope{data=domain.Project}
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	p, err := h.service.UpdateProject(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project updated successfully", p)
}

// Delete handles DELETE /projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Project deleted successfully", nil)
}
