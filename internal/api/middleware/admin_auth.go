package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

// HeaderAdminToken carries the static admin token.
const HeaderAdminToken = "X-Admin-Token"

// AdminAuthConfig lists the accepted admin credentials. An empty field
// disables that scheme; with both empty every request is rejected.
type AdminAuthConfig struct {
	Token     string
	JWTSecret string
}

// AdminAuth accepts either the static X-Admin-Token or a bearer JWT issued by
// the admin login. Tokens without the admin role are forbidden.
func AdminAuth(cfg AdminAuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			if token := req.Header.Get(HeaderAdminToken); token != "" {
				if cfg.Token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Token)) != 1 {
					return domain.ErrUnauthorized
				}
				c.Set("role", domain.RoleAdmin)
				return next(c)
			}

			authHeader := req.Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return domain.ErrUnauthorized
			}
			scheme, raw, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || cfg.JWTSecret == "" {
				return domain.ErrUnauthorized
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(cfg.JWTSecret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
			if err != nil || !tkn.Valid {
				return domain.ErrUnauthorized
			}

			role, _ := claims["role"].(string)
			if role != domain.RoleAdmin {
				return domain.ErrForbidden
			}

			c.Set("role", role)
			return next(c)
		}
	}
}
