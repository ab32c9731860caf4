package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OriginGuard rejects browser requests whose Origin is not allowed,
// preflights included. Requests without an Origin header pass through.
// A "*" entry allows every origin.
func OriginGuard(allowed []string) echo.MiddlewareFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	_, allowAll := set["*"]

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin == "" || allowAll {
				return next(c)
			}
			if _, ok := set[origin]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "origin not allowed")
			}
			return next(c)
		}
	}
}
