package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:"

// incrWindow bumps the counter and arms its TTL in one step. A counter found
// without a TTL is re-armed, so a key can never outlive its window.
var incrWindow = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RateLimiter is a fixed-window counter backed by Redis.
// Key format: ratelimit:<key>
type RateLimiter struct {
	client redis.Scripter
}

// NewRateLimiter creates a RateLimiter wrapping the given Redis client.
func NewRateLimiter(client redis.Scripter) *RateLimiter {
	return &RateLimiter{client: client}
}

// Allow increments the counter for key and reports whether it is still within
// limit. The window starts with the first hit and is not extended by later ones.
func (l *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := incrWindow.Run(ctx, l.client, []string{rateLimitPrefix + key}, window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit: %w", err)
	}
	return n <= int64(limit), nil
}
