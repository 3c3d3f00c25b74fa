package testsupport

import (
	"path/filepath"
	"testing"

	"darkroom/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp log directory per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Convert.Workers = 2

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithQuality sets the JPEG encode quality on the test config.
func WithQuality(quality int) ConfigOption {
	return func(c *config.Config) {
		c.Convert.Quality = quality
	}
}

// WithWorkers sets the pool size on the test config.
func WithWorkers(workers int) ConfigOption {
	return func(c *config.Config) {
		c.Convert.Workers = workers
	}
}

// WithFFmpegBinary points the transcoder at a specific binary.
func WithFFmpegBinary(binary string) ConfigOption {
	return func(c *config.Config) {
		c.FFmpeg.Binary = binary
	}
}
