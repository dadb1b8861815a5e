package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level emitted (debug, info, warn, error)
	Level string `koanf:"level"`

	// Format selects the encoder: "json" or "console"
	Format string `koanf:"format"`

	// Sampling reduces log volume for high-frequency entries
	Sampling SamplingConfig `koanf:"sampling"`

	// Caller controls caller annotation
	Caller CallerConfig `koanf:"caller"`

	// Fields are constant fields attached to every entry
	Fields map[string]string `koanf:"fields"`
}

// SamplingConfig controls log volume reduction.
type SamplingConfig struct {
	Enabled    bool `koanf:"enabled"`
	Initial    int  `koanf:"initial"`
	Thereafter int  `koanf:"thereafter"`
}

// CallerConfig controls caller information in logs.
type CallerConfig struct {
	Enabled bool `koanf:"enabled"`
	Skip    int  `koanf:"skip"`
}

// samplingTick is the interval over which sampling counters reset.
const samplingTick = time.Second

// NewDefaultConfig returns config with production-ready defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "json",
		Sampling: SamplingConfig{
			Enabled:    true,
			Initial:    100,
			Thereafter: 10,
		},
		Caller: CallerConfig{
			Enabled: true,
			Skip:    0,
		},
		Fields: map[string]string{
			"service": "screend",
		},
	}
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("format must be 'json' or 'console', got %q", c.Format)
	}
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("invalid level %q: %w", c.Level, err)
	}
	if c.Sampling.Enabled && c.Sampling.Initial <= 0 {
		return fmt.Errorf("sampling initial must be > 0 when sampling enabled")
	}
	if c.Caller.Enabled && c.Caller.Skip < 0 {
		return fmt.Errorf("caller skip must be >= 0, got %d", c.Caller.Skip)
	}
	for k, v := range c.Fields {
		if k == "" {
			return fmt.Errorf("field key cannot be empty")
		}
		if v == "" {
			return fmt.Errorf("field %q has empty value", k)
		}
	}
	return nil
}
