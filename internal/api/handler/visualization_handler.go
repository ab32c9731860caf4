package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

type VisualizationHandler struct {
	service ports.VisualizationService
}

func NewVisualizationHandler(service ports.VisualizationService) *VisualizationHandler {
	return &VisualizationHandler{service: service}
}

type createVisualizationRequest struct {
	Title        string         `json:"title"        validate:"required,max=200"`
	Description  string         `json:"description"  validate:"required"`
	Metrics      []string       `json:"metrics"      validate:"dive,required"`
	ChartType    string         `json:"chartType"    validate:"required,max=50"`
	ChartData    map[string]any `json:"chartData"`
	IsActive     *bool          `json:"isActive"`
	DisplayOrder int            `json:"displayOrder" validate:"min=0"`
}

type updateVisualizationRequest struct {
	Title        *string         `json:"title"        validate:"omitnil,min=1,max=200"`
	Description  *string         `json:"description"  validate:"omitnil,min=1"`
	Metrics      *[]string       `json:"metrics"      validate:"omitnil,dive,required"`
	ChartType    *string         `json:"chartType"    validate:"omitnil,min=1,max=50"`
	ChartData    *map[string]any `json:"chartData"`
	IsActive     *bool           `json:"isActive"`
	DisplayOrder *int            `json:"displayOrder" validate:"omitnil,min=0"`
}

// ListActive handles GET /visualizations.
//
// @Summary      List active visualizations
// @Tags         visualizations
// @Produce      json
// @Success      200  {array}  domain.Visualization
// @Router       /visualizations [get]
func (h *VisualizationHandler) ListActive(c echo.Context) error {
	return h.list(c, true)
}

// ListAll handles GET /visualizations/all.
//
// @Summary      List every visualization
// @Tags         visualizations
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Success      200  {array}   domain.Visualization
// @Failure      401  {object}  ErrorResponse
// @Router       /visualizations/all [get]
func (h *VisualizationHandler) ListAll(c echo.Context) error {
	return h.list(c, false)
}

func (h *VisualizationHandler) list(c echo.Context, activeOnly bool) error {
	items, err := h.service.ListVisualizations(c.Request().Context(), activeOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /visualizations.
//
// @Summary      Create a visualization
// @Tags         visualizations
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        body  body      createVisualizationRequest  true  "Visualization"
// @Success      201   {object}  Envelope{data=domain.Visualization}
// @Failure      400   {object}  ErrorResponse
// @Router       /visualizations [post]
func (h *VisualizationHandler) Create(c echo.Context) error {
	var req createVisualizationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	v, err := h.service.CreateVisualization(c.Request().Context(), ports.CreateVisualizationInput{
		Title:        req.Title,
		Description:  req.Description,
		Metrics:      req.Metrics,
		ChartType:    req.ChartType,
		ChartData:    req.ChartData,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Visualization created successfully", v)
}

// Update handles PUT /visualizations/:id.
//
// @Summary      Update a visualization
// @Tags         visualizations
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        id    path      string                      true  "Visualization id"
// @Param        body  body      updateVisualizationRequest  true  "Fields to change"
// @Success      200   {object}  Envelope{data=domain.Visualization}
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /visualizations/{id} [put]
func (h *VisualizationHandler) Update(c echo.Context) error {
	var req updateVisualizationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	v, err := h.service.UpdateVisualization(c.Request().Context(), c.Param("id"), domain.VisualizationPatch(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Visualization updated successfully", v)
}

// Delete handles DELETE /visualizations/:id.
//
// @Summary      Delete a visualization
// @Tags         visualizations
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        id   path      string  true  "Visualization id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  ErrorResponse
// @Router       /visualizations/{id} [delete]
func (h *VisualizationHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteVisualization(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Visualization deleted successfully", nil)
}
