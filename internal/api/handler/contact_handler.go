package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/api/metrics"
	"github.com/portfolio-site/portfolio-api/internal/core/domain"
	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *contactRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

type contactReceipt struct {
	ID string `json:"id"`
}

// Submit handles POST /contact.
//
// @Summary      Leave a message
// @Description  Rate limited per client IP.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      201   {object}  Envelope{data=contactReceipt}
// @Failure      400   {object}  ErrorResponse
// @Failure      429   {object}  ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	req.trim()
	if err := c.Validate(&req); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	msg, err := h.service.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Meta:    requestMeta(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRateLimited):
			metrics.ContactSubmissionsTotal.WithLabelValues("rate_limited").Inc()
		case errors.Is(err, domain.ErrValidation):
			metrics.ContactSubmissionsTotal.WithLabelValues("invalid").Inc()
		default:
			metrics.ContactSubmissionsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("accepted").Inc()
	return respond(c, http.StatusCreated, "Message sent successfully", contactReceipt{ID: msg.ID})
}

// List handles GET /contact.
//
// @Summary      List contact messages
// @Description  Newest first.
// @Tags         contact
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Success      200  {array}   domain.ContactMessage
// @Failure      401  {object}  ErrorResponse
// @Router       /contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	messages, err := h.service.ListMessages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// MarkRead handles PUT /contact/:id/read.
//
// @Summary      Mark a message as read
// @Tags         contact
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  Envelope{data=domain.ContactMessage}
// @Failure      404  {object}  ErrorResponse
// @Router       /contact/{id}/read [put]
func (h *ContactHandler) MarkRead(c echo.Context) error {
	msg, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Message marked as read", msg)
}
