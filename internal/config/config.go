// Package config provides configuration loading for screend.
package config

import (
	"fmt"
	"time"

	"github.com/havenlabs/screend/internal/events"
	"github.com/havenlabs/screend/internal/logging"
	"github.com/havenlabs/screend/internal/screening"
	"github.com/havenlabs/screend/internal/telemetry"
)

// Config is the root screend configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   logging.Config   `koanf:"logging"`
	Telemetry telemetry.Config `koanf:"telemetry"`
	Events    events.Config    `koanf:"events"`
	Screening screening.Config `koanf:"screening"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string   `koanf:"host"`
	Port            int      `koanf:"port"`
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`

	// RateLimit is requests per second per remote IP; 0 disables limiting
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the burst size when rate limiting is enabled
	RateBurst int `koanf:"rate_burst"`
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 9180
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = Duration(10 * time.Second)
	}
	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = 20
	}

	if cfg.Logging.Format == "" {
		def := logging.NewDefaultConfig()
		cfg.Logging = *def
	}

	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "screend"
	}
	if cfg.Telemetry.ExportInterval == 0 {
		cfg.Telemetry.ExportInterval = 30 * time.Second
	}

	if cfg.Events.SubjectPrefix == "" {
		cfg.Events.SubjectPrefix = "screend.alerts"
	}
}

// Validate validates the assembled configuration, compiling the screening
// catalogs as a side effect.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server rate_limit cannot be negative")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	if err := c.Events.Validate(); err != nil {
		return fmt.Errorf("events: %w", err)
	}
	if err := c.Screening.Validate(); err != nil {
		return fmt.Errorf("screening: %w", err)
	}
	return nil
}
