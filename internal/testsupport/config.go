package testsupport

import (
	"path/filepath"
	"testing"

	"stichwort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithOverlapThreshold overrides the fuzzy matching threshold.
func WithOverlapThreshold(threshold float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Tags.OverlapThreshold = threshold
	}
}

// WithSynonymsPath points the config at a custom synonym table.
func WithSynonymsPath(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Tags.SynonymsPath = path
	}
}
