package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

// AdminService exchanges the site owner's password for a short-lived token.
type AdminService struct {
	passwordHash string
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAdminService(passwordHash, jwtSecret string, tokenTTL time.Duration) *AdminService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AdminService{passwordHash: passwordHash, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AdminService) Login(_ context.Context, password string) (*domain.AdminToken, error) {
	if s.passwordHash == "" || s.jwtSecret == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"sub":  domain.RoleAdmin,
		"role": domain.RoleAdmin,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}
	return &domain.AdminToken{Token: signed, ExpiresAt: expiresAt.UTC()}, nil
}
