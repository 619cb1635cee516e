// Package config loads application configuration from environment
// variables. A local .env file is honoured when present so the widget
// runs out of the box in development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Every field has a
// sensible default; nothing is required, because the widget carries its
// own catalog and keeps all state in memory.
type Config struct {
	Env         string        // application environment (e.g. "dev", "prod")
	Port        string        // HTTP port to listen on
	SeatRows    int           // rows in the fixed seat grid
	SeatsPerRow int           // seats per row in the fixed seat grid
	NoticeTTL   time.Duration // how long a toast notification stays visible
	AMQPURL     string        // RabbitMQ URL; empty disables event publishing
	RunConsumer bool          // start the booking.log consumer alongside the server
}

// Load reads the environment (after loading .env when present) and
// returns a Config. The grid defaults to 15x10, which covers the
// largest seeded capacity of 150 seats. Grid dimensions are bounded:
// rows are labelled with a single letter, so at most 26 are allowed.
func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:         getenv("APP_ENV", "dev"),
		Port:        getenv("APP_PORT", "8080"),
		SeatRows:    envInt("SEAT_ROWS", 15),
		SeatsPerRow: envInt("SEATS_PER_ROW", 10),
		NoticeTTL:   envDur("NOTICE_TTL", 3*time.Second),
		AMQPURL:     os.Getenv("RABBITMQ_URL"),
		RunConsumer: envBool("RUN_BOOKING_CONSUMER", false),
	}
	if cfg.SeatRows < 1 {
		cfg.SeatRows = 15
	}
	if cfg.SeatRows > 26 {
		cfg.SeatRows = 26
	}
	if cfg.SeatsPerRow < 1 {
		cfg.SeatsPerRow = 10
	}
	return cfg
}

// Helper functions shared by the other config files in this package.

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	return def
}
