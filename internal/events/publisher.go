// Package events publishes screening alert events to the pipeline bus.
//
// When a screen marks the crisis category as met or detects psychosis
// indicators, the daemon emits a compact event so downstream consumers (the
// crisis-resource flow, analytics) can react without polling. Events carry
// identifiers, scores, and tiers only; message text never reaches the bus.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Alert kinds.
const (
	KindCrisis    = "crisis"
	KindPsychosis = "psychosis"
)

// Config holds event feed configuration. An empty NATSURL disables the feed.
type Config struct {
	// NATSURL is the bus address; empty disables publishing
	NATSURL string `koanf:"nats_url"`

	// SubjectPrefix is prepended to the alert kind (default "screend.alerts")
	SubjectPrefix string `koanf:"subject_prefix"`
}

// Validate checks config for errors.
func (c *Config) Validate() error {
	if c.NATSURL != "" && c.SubjectPrefix == "" {
		return fmt.Errorf("subject_prefix is required when nats_url is set")
	}
	return nil
}

// Enabled returns whether a bus is configured.
func (c *Config) Enabled() bool {
	return c.NATSURL != ""
}

// Alert is the published event payload.
type Alert struct {
	// AnalysisID correlates the alert with the analyze response
	AnalysisID string `json:"analysis_id"`

	// Kind is "crisis" or "psychosis"
	Kind string `json:"kind"`

	// Score is the category score that crossed the threshold
	Score int `json:"score"`

	// Confidence is the tier reported for the triggering detector
	Confidence string `json:"confidence"`

	// Timestamp is when the screening finished
	Timestamp time.Time `json:"timestamp"`
}

// Publisher emits screening alerts.
type Publisher interface {
	// Publish emits one alert. Implementations must not block on consumers.
	Publish(ctx context.Context, alert Alert) error

	// Close releases the underlying connection.
	Close()
}

// natsPublisher publishes alerts to a NATS subject per alert kind.
type natsPublisher struct {
	conn   *nats.Conn
	prefix string
	logger *zap.Logger
}

// NewNATS connects to the bus and returns a Publisher. Connection retries are
// delegated to the NATS client so a briefly absent bus doesn't fail startup.
func NewNATS(cfg *Config, logger *zap.Logger) (Publisher, error) {
	if !cfg.Enabled() {
		return &NoopPublisher{}, nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := nats.Connect(cfg.NATSURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(1*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATSURL, err)
	}

	logger.Info("connected to event bus", zap.String("url", cfg.NATSURL))

	return &natsPublisher{
		conn:   conn,
		prefix: cfg.SubjectPrefix,
		logger: logger,
	}, nil
}

// Publish emits one alert to <prefix>.<kind>.
func (p *natsPublisher) Publish(_ context.Context, alert Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	subject := p.prefix + "." + alert.Kind
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	p.logger.Debug("published alert",
		zap.String("subject", subject),
		zap.String("analysis_id", alert.AnalysisID),
		zap.String("kind", alert.Kind),
	)

	return nil
}

// Close drains and closes the connection.
func (p *natsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("failed to drain NATS connection", zap.Error(err))
	}
}

// NoopPublisher discards alerts (event feed disabled).
type NoopPublisher struct{}

// Publish discards the alert.
func (n *NoopPublisher) Publish(context.Context, Alert) error { return nil }

// Close does nothing.
func (n *NoopPublisher) Close() {}

// Compile-time checks.
var _ Publisher = (*natsPublisher)(nil)
var _ Publisher = (*NoopPublisher)(nil)
