package config

import "time"

// CacheConfig defines settings for the response cache middleware that
// sits in front of the browse endpoints. When Enabled is false or no
// Redis client is available, caching is disabled. Only GET responses
// are cached; the key is the route plus query string.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig,
// falling back to defaults. The TTL is short because availability
// counts change with every booking.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 5*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
