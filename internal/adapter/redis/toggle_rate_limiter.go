package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/erwinjamescodes/sinotoriables/internal/domain"
)

// rateLimitScript implements a token bucket per browser. It refills
// fractional tokens from the elapsed time since the last call, caps at the
// bucket capacity, and consumes one token when available.
// ARGV: [1]=now_ms, [2]=capacity, [3]=rate per minute
// Returns 1 when the toggle is allowed, 0 when rate limited.
var rateLimitScript = goredis.NewScript(`
local tokens = tonumber(redis.call('HGET', KEYS[1], 'tokens')) or tonumber(ARGV[2])
local last_refill = tonumber(redis.call('HGET', KEYS[1], 'last_refill')) or tonumber(ARGV[1])
local elapsed_min = (tonumber(ARGV[1]) - last_refill) / 60000.0
tokens = math.min(tonumber(ARGV[2]), tokens + elapsed_min * tonumber(ARGV[3]))
local allowed = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
end
redis.call('HSET', KEYS[1], 'tokens', tostring(tokens), 'last_refill', ARGV[1])
redis.call('PEXPIRE', KEYS[1], 300000)
return allowed
`)

// ToggleRateLimiter implements token bucket rate limiting for like toggles.
type ToggleRateLimiter struct {
	rdb      *goredis.Client
	clock    clockwork.Clock
	capacity int
	rate     int // tokens per minute
}

// NewToggleRateLimiter creates a new toggle rate limiter.
// capacity: maximum burst size (tokens)
// rate: sustained rate (tokens per minute)
func NewToggleRateLimiter(client *Client, clock clockwork.Clock, capacity, rate int) *ToggleRateLimiter {
	return &ToggleRateLimiter{
		rdb:      client.rdb,
		clock:    clock,
		capacity: capacity,
		rate:     rate,
	}
}

// Allow checks if a toggle is allowed for the browser.
// Returns true if allowed (token consumed), false if rate limited.
func (l *ToggleRateLimiter) Allow(ctx context.Context, browserID domain.BrowserID) (bool, error) {
	key := fmt.Sprintf("rate_limit:toggles:%s", browserID)

	result, err := rateLimitScript.Run(ctx, l.rdb, []string{key},
		strconv.FormatInt(l.clock.Now().UnixMilli(), 10),
		strconv.Itoa(l.capacity),
		strconv.Itoa(l.rate),
	).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}

	return result == 1, nil
}
