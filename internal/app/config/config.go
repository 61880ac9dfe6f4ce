package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Catalog  Catalog    `mapstructure:",squash"`
	Search   Search     `mapstructure:",squash"`
	Payment  Payment    `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// Catalog configures the mock flight generator. Seed 0 means a
// time-derived seed, any other value pins the generated batches.
type Catalog struct {
	Seed int64 `mapstructure:"CATALOG_SEED"`
}

type Search struct {
	RateLimitRPS int `mapstructure:"SEARCH_RATE_LIMIT"`
}

// Payment configures the simulated payment gateway. The delay is the
// only asynchronous boundary in the whole flow; it always resolves
// successfully.
type Payment struct {
	ProcessingDelay time.Duration `mapstructure:"PAYMENT_PROCESSING_DELAY"`
}
