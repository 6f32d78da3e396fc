package model

import (
	"time"
)

// Store backends understood by the store package.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// BookingConfig tunes the simulated booking call.
type BookingConfig struct {
	// Delay is how long a simulated booking takes
	Delay time.Duration `ini:"delay" validate:"gte=0"`

	// FailureRate is the probability that a simulated booking fails
	FailureRate float64 `ini:"failure_rate" validate:"gte=0,lte=1"`

	// Highlight is how long the success highlight stays on a card
	Highlight time.Duration `ini:"highlight" validate:"gte=0"`
}

// CatalogConfig tunes the simulated catalog fetch.
type CatalogConfig struct {
	LoadDelay time.Duration `ini:"load_delay" validate:"gte=0"`
}

// StoreConfig selects where the profile name is persisted.
type StoreConfig struct {
	// Backend is one of bolt, sqlite, redis or memory
	Backend string `ini:"backend" validate:"oneof=bolt sqlite redis memory"`

	// Path overrides the database file for bolt and sqlite
	Path string `ini:"path"`

	// RedisURL is used by the redis backend
	RedisURL string `ini:"redis_url" validate:"required_if=Backend redis"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `ini:"level" validate:"oneof=debug info warn error"`
	Format string `ini:"format" validate:"oneof=text json"`
}

// Config holds the application configuration
type Config struct {
	Booking BookingConfig `ini:"booking"`
	Catalog CatalogConfig `ini:"catalog"`
	Store   StoreConfig   `ini:"store"`
	Log     LogConfig     `ini:"log"`
}

// DefaultConfig returns a Config with the demo's timings
func DefaultConfig() Config {
	return Config{
		Booking: BookingConfig{
			Delay:       700 * time.Millisecond,
			FailureRate: 0.15,
			Highlight:   time.Second,
		},
		Catalog: CatalogConfig{
			LoadDelay: 700 * time.Millisecond,
		},
		Store: StoreConfig{
			Backend:  BackendBolt,
			RedisURL: "redis://localhost:6379/0",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
