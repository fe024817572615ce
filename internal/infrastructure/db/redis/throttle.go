package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hop4deals/deals-api/internal/core/ports"
)

const (
	throttleLimit  = 10
	throttleWindow = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per email+address pair.
// Key format: login_fail:<email>:<remote_addr>
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

var _ ports.LoginThrottle = (*LoginThrottle)(nil)

// Blocked reports whether this email+address pair has exceeded the failure
// limit inside the current window.
func (t *LoginThrottle) Blocked(ctx context.Context, email, remoteAddr string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email, remoteAddr)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= throttleLimit, nil
}

// RecordFailure increments the failure counter. The window TTL is set on the
// first failure and left alone afterwards, so the counter expires a fixed
// time after the first failure rather than the last.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email, remoteAddr string) error {
	key := t.key(email, remoteAddr)

	pipe := t.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	if incr.Val() == 1 {
		if err := t.client.Expire(ctx, key, throttleWindow).Err(); err != nil {
			return fmt.Errorf("throttle expire: %w", err)
		}
	}
	return nil
}

// Clear forgets the counter after a successful login.
func (t *LoginThrottle) Clear(ctx context.Context, email, remoteAddr string) error {
	if err := t.client.Del(ctx, t.key(email, remoteAddr)).Err(); err != nil {
		return fmt.Errorf("throttle clear: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(email, remoteAddr string) string {
	return fmt.Sprintf("login_fail:%s:%s", strings.ToLower(email), remoteAddr)
}
