// Package middleware provides the Redis-backed cross-cutting concerns
// applied to the public browse routes: token-bucket rate limiting and
// response caching. Both degrade to pass-throughs when Redis is not
// available so the widget keeps working without infrastructure.
package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
)

// NewTokenBucket returns a rate-limiting middleware. Each client IP has
// one bucket per route, stored in Redis and refilled by a Lua script so
// check-and-decrement is atomic across instances. When the bucket is
// empty the request is rejected with 429 and a Retry-After header.
func NewTokenBucket(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	limiterScript := redis.NewScript(`
		local key = KEYS[1]
		local now_ms = tonumber(ARGV[1])
		local capacity = tonumber(ARGV[2])
		local refill_tokens = tonumber(ARGV[3])
		local interval_ms = tonumber(ARGV[4])
		local ttl_seconds = tonumber(ARGV[5])

		local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
		local tokens = tonumber(state[1])
		local last_refill = tonumber(state[2])

		if tokens == nil or last_refill == nil then
			tokens = capacity
			last_refill = now_ms
		end

		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + (intervals * refill_tokens))
			last_refill = last_refill + (intervals * interval_ms)
		end

		local allowed = 0
		local retry_after_ms = 0
		if tokens > 0 then
			allowed = 1
			tokens = tokens - 1
		else
			retry_after_ms = interval_ms - ((now_ms - last_refill) % interval_ms)
		end

		redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
		redis.call('EXPIRE', key, ttl_seconds)
		return {allowed, retry_after_ms}
	`)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("%s:%s:%s", cfg.Prefix, c.RealIP(), c.Path())
			nowMS := time.Now().UnixMilli()
			res, err := limiterScript.Run(c.Request().Context(), rdb, []string{key},
				nowMS, cfg.Capacity, cfg.RefillTokens, cfg.RefillInterval.Milliseconds(),
				int(cfg.TTL.Seconds()),
			).Int64Slice()
			if err != nil || len(res) != 2 {
				// Limiter trouble must not take the API down.
				return next(c)
			}
			if res[0] != 1 {
				retryAfter := int(math.Ceil(float64(res[1]) / 1000))
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
