// Package telemetry provides OpenTelemetry metric export for screend.
//
// Export is disabled by default; the daemon still serves Prometheus metrics
// on /metrics either way. When enabled, metrics are pushed over OTLP/HTTP to
// the configured collector. Telemetry failures never crash the daemon.
package telemetry

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// Config holds telemetry configuration.
type Config struct {
	// Enabled turns on OTLP metric export
	Enabled bool `koanf:"enabled"`

	// Endpoint is the OTLP/HTTP collector endpoint (host:port)
	Endpoint string `koanf:"endpoint"`

	// Insecure disables TLS for the exporter connection
	Insecure bool `koanf:"insecure"`

	// TLSSkipVerify skips certificate verification for internal CAs
	TLSSkipVerify bool `koanf:"tls_skip_verify"`

	// ServiceName and ServiceVersion identify the service in the backend
	ServiceName    string `koanf:"service_name"`
	ServiceVersion string `koanf:"service_version"`

	// ExportInterval is how often metrics are pushed
	ExportInterval time.Duration `koanf:"export_interval"`
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required when telemetry is enabled")
	}
	if c.ExportInterval <= 0 {
		return fmt.Errorf("export_interval must be > 0")
	}
	return nil
}

// Telemetry manages the MeterProvider and its shutdown.
type Telemetry struct {
	meterProvider *sdkmetric.MeterProvider
}

// New initializes metric export from config. If telemetry is disabled, a
// no-op instance is returned and the global meter provider is left untouched.
func New(ctx context.Context, cfg *Config) (*Telemetry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry config: %w", err)
	}

	t := &Telemetry{}
	if !cfg.Enabled {
		return t, nil
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(stripScheme(cfg.Endpoint)),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	} else if cfg.TLSSkipVerify {
		opts = append(opts, otlpmetrichttp.WithTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // User explicitly requested
		}))
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(cfg.ExportInterval),
			),
		),
	)

	t.meterProvider = mp
	otel.SetMeterProvider(mp)

	return t, nil
}

// Meter returns a meter for the given instrumentation scope. Returns a no-op
// meter when export is disabled.
func (t *Telemetry) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if t == nil || t.meterProvider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return t.meterProvider.Meter(name, opts...)
}

// Shutdown flushes and stops metric export.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.meterProvider == nil {
		return nil
	}

	var errs []error
	if err := t.meterProvider.ForceFlush(ctx); err != nil {
		errs = append(errs, fmt.Errorf("meter flush: %w", err))
	}
	if err := t.meterProvider.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
	}
	return errors.Join(errs...)
}

// stripScheme removes http:// or https:// from an endpoint URL. The OTLP HTTP
// exporter expects just host:port.
func stripScheme(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return endpoint
}
