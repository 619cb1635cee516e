package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-ticket-booking/internal/config"
)

// cachedResponse is the envelope stored in Redis for each cached GET.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter forwards the response to the client while keeping a
// bounded copy of the body for the cache.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.buf.Len()+len(b) <= cw.limit {
		cw.buf.Write(b)
	} else {
		cw.buf.Reset()
		cw.limit = -1 // overflowed, do not cache
	}
	return cw.ResponseWriter.Write(b)
}

// NewResponseCache returns a middleware that serves successful GET
// responses from Redis for a short TTL. Availability counts change with
// every booking, so the TTL is deliberately small; a slightly stale
// count is acceptable for a listing page. Disabled cleanly when Redis
// is absent.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := cfg.Prefix + ":" + c.Request().URL.Path + "?" + c.Request().URL.RawQuery
			ctx := c.Request().Context()

			if data, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(data, &cached) == nil {
					c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}
			if cw.limit < 0 || cw.status != http.StatusOK {
				return nil
			}
			cached := cachedResponse{
				Status:      cw.status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        cw.buf.Bytes(),
			}
			if data, err := json.Marshal(cached); err == nil {
				// Best effort; a failed SET just means a cache miss later.
				_ = rdb.Set(ctx, key, data, cfg.TTL).Err()
			}
			return nil
		}
	}
}
