package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/core/ports"
)

func requestMeta(c echo.Context) ports.RequestMeta {
	r := c.Request()
	return ports.RequestMeta{
		// The router's IPExtractor decides how far X-Forwarded-For is trusted.
		IPAddress: c.RealIP(),
		UserAgent: r.UserAgent(),
		Referrer:  r.Referer(),
	}
}

// bind decodes the request body and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(req)
}
