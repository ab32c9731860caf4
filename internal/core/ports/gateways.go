package ports

import (
	"context"
	"io"
	"time"

	"github.com/portfolio-site/portfolio-api/internal/core/domain"
)

// RateLimiter counts hits per key inside a fixed window.
type RateLimiter interface {
	// Allow records a hit for key and reports whether it is within limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// FileStorage uploads files and returns their public URL.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, folder, publicID string) (string, error)
}

// ContactNotifier tells the site owner a message arrived.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, m *domain.ContactMessage) error
}
