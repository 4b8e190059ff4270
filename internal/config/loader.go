package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) if XSCOUT_CONFIG is set
//  3. env (prefix XSCOUT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("XSCOUT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: XSCOUT_ADDR, XSCOUT_DATASET_PATH, ...
	// Keys map to the koanf tags on the struct, underscores preserved.
	envProvider := env.Provider("XSCOUT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "xscout_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DatasetPath == "" && c.DatasetURL == "":
		return fmt.Errorf("%w: a dataset path or url is required", ErrInvalidConfig)
	case c.DatasetTimeoutMS <= 0:
		return fmt.Errorf("%w: dataset_timeout_ms must be positive", ErrInvalidConfig)
	case c.MinMinutes < 0:
		return fmt.Errorf("%w: min_minutes must not be negative", ErrInvalidConfig)
	case c.MaxLeaderboardLimit < 1:
		return fmt.Errorf("%w: max_leaderboard_limit must be positive", ErrInvalidConfig)
	case c.MaxSimilarLimit < 1:
		return fmt.Errorf("%w: max_similar_limit must be positive", ErrInvalidConfig)
	case c.ScoreWorkers < 1:
		return fmt.Errorf("%w: score_workers must be positive", ErrInvalidConfig)
	}
	return nil
}
