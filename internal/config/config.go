// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults; Load layers file/env on top.
// - External errors are wrapped via this package's sentinel errors.
package config

import (
	"runtime"

	"github.com/courtside/fastbreak/internal/domain/model"
	"github.com/courtside/fastbreak/internal/domain/scoring"
)

// RatingScale mirrors model.Scale with koanf tags so the rating population
// can be overridden from file or environment.
type RatingScale struct {
	Min    float64 `koanf:"min"`
	Max    float64 `koanf:"max"`
	Mean   float64 `koanf:"mean"`
	StdDev float64 `koanf:"std_dev"`
}

// Scale converts to the domain type.
func (r RatingScale) Scale() model.Scale {
	return model.Scale{Min: r.Min, Max: r.Max, Mean: r.Mean, StdDev: r.StdDev}
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Possessions is the default session length for CLI runs and /simulate.
	Possessions int `koanf:"possessions"`

	// WorkerCount sets the number of simulation workers.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the in-memory possession queue.
	QueueSize int `koanf:"queue_size"`

	// Seed drives possession generation; 0 means seed from the clock.
	Seed int64 `koanf:"seed"`

	// ShardCount configures the number of shards in the box-score store.
	ShardCount int `koanf:"shard_count"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// Rating describes the rating population used for standardization.
	Rating RatingScale `koanf:"rating"`

	// Weights holds the per-event scoring tables.
	Weights scoring.Params `koanf:"weights"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		Possessions:         200,
		WorkerCount:         runtime.NumCPU(),
		QueueSize:           10_000,
		Seed:                0,
		ShardCount:          8,
		MaxLeaderboardLimit: 100,
		Rating:              RatingScale{Min: 25, Max: 99, Mean: 50, StdDev: 12},
		Weights:             scoring.DefaultParams(),
	}
}
