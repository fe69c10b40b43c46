package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultAttempts = 10
	defaultWindow   = time.Minute
)

// LoginLimiter is a fixed-window counter over Redis used to throttle
// credential attempts. Key format: authlimit:<client ip>
type LoginLimiter struct {
	client   *redis.Client
	attempts int
	window   time.Duration
}

// NewLoginLimiter creates a LoginLimiter allowing attempts requests per
// window for each key.
func NewLoginLimiter(client *redis.Client, attempts int, window time.Duration) *LoginLimiter {
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginLimiter{client: client, attempts: attempts, window: window}
}

// Allow reports whether the caller identified by key may make another
// attempt. The window starts on the first attempt and expires on its own.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "authlimit:" + key

	n, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.attempts), nil
}
