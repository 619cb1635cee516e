package config

// Redis backs the optional rate limiting and response caching on the
// browse endpoints. The widget works without it: when no server can be
// reached the constructor returns nil and both middlewares turn into
// pass-throughs.

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from the environment.
// Supported variables:
//
//	REDIS_ADDR     – host:port of the Redis server (default localhost:6379)
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number (default 0)
//
// The client is pinged with a short timeout; on failure nil is returned
// and callers degrade gracefully.
func NewRedisClient() *redis.Client {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	dbNum := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
