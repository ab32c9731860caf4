package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /profile.
//
// @Summary      Get the portfolio profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  ErrorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	p, err := h.service.GetProfile(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Replace handles PUT /profile.
//
// @Summary      Replace the portfolio profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     AdminToken
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Complete profile"
// @Success      200   {object}  Envelope{data=domain.Profile}
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Replace(c echo.Context) error {
	var req profileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	p, err := h.service.ReplaceProfile(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Profile updated successfully", p)
}
