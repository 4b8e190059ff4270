// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; Load layers file and env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DatasetPath points at a local players.json. Used when DatasetURL is
	// empty.
	DatasetPath string `koanf:"dataset_path"`

	// DatasetURL fetches players.json over HTTP. Takes precedence over
	// DatasetPath.
	DatasetURL string `koanf:"dataset_url"`

	// DatasetTimeoutMS bounds the dataset fetch.
	DatasetTimeoutMS int `koanf:"dataset_timeout_ms"`

	// MinMinutes is the qualification threshold records must meet.
	MinMinutes int `koanf:"min_minutes"`

	// MaxLeaderboardLimit caps GET /roles/{name}/leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// MaxSimilarLimit caps GET /players/{id}/similar?limit.
	MaxSimilarLimit int `koanf:"max_similar_limit"`

	// ScoreWorkers shards ranking passes over the pool.
	ScoreWorkers int `koanf:"score_workers"`

	// CORSAllowOrigins lists origins the dashboard is served from.
	CORSAllowOrigins []string `koanf:"cors_allow_origins"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8090",
		DatasetPath:         "data/players.json",
		DatasetTimeoutMS:    10_000,
		MinMinutes:          450,
		MaxLeaderboardLimit: 200,
		MaxSimilarLimit:     25,
		ScoreWorkers:        runtime.NumCPU(),
		CORSAllowOrigins:    []string{"*"},
	}
}
