package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

// AnalyticsHandler accepts tracking events and serves aggregated stats.
// Events are handed to the recorder and written after the response is sent.
type AnalyticsHandler struct {
	service  ports.AnalyticsService
	recorder ports.EventRecorder
}

func NewAnalyticsHandler(service ports.AnalyticsService, recorder ports.EventRecorder) *AnalyticsHandler {
	return &AnalyticsHandler{service: service, recorder: recorder}
}

type analyticsEventRequest struct {
	EventType string `json:"eventType" validate:"omitempty,oneof=visit download contact"`
	Page      string `json:"page"      validate:"max=500"`
	Referrer  string `json:"referrer"  validate:"max=2000"`
}

// LogVisit handles POST /analytics/visit.
//
// @Summary      Log an analytics event
// @Description  eventType defaults to "visit".
// @Tags         analytics
// @Accept       json
// @Param        body  body  analyticsEventRequest  false  "Event"
// @Success      202
// @Failure      400   {object}  ErrorResponse
// @Router       /analytics/visit [post]
func (h *AnalyticsHandler) LogVisit(c echo.Context) error {
	return h.accept(c, domain.EventVisit, "/")
}

// LogDownload handles POST /analytics/download.
//
// @Summary      Log a resume download
// @Tags         analytics
// @Accept       json
// @Param        body  body  analyticsEventRequest  false  "Event (eventType is ignored)"
// @Success      202
// @Router       /analytics/download [post]
func (h *AnalyticsHandler) LogDownload(c echo.Context) error {
	return h.accept(c, domain.EventDownload, "resume")
}

func (h *AnalyticsHandler) accept(c echo.Context, defaultType domain.EventType, defaultPage string) error {
	var req analyticsEventRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	in := ports.RecordEventInput{
		EventType: domain.EventType(req.EventType),
		Page:      req.Page,
		Meta:      requestMeta(c),
	}
	if defaultType == domain.EventDownload || in.EventType == "" {
		in.EventType = defaultType
	}
	if in.Page == "" {
		in.Page = defaultPage
	}
	if req.Referrer != "" {
		in.Meta.Referrer = req.Referrer
	}

	h.recorder.Enqueue(in)
	return c.NoContent(http.StatusAccepted)
}

// Stats handles GET /analytics/stats.
//
// @Summary      Aggregated analytics
// @Tags         analytics
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Success      200  {object}  ports.AnalyticsStats
// @Failure      401  {object}  ErrorResponse
// @Router       /analytics/stats [get]
func (h *AnalyticsHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
