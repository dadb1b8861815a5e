package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("empty config is valid and disabled", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Validate())
		assert.False(t, cfg.Enabled())
	})

	t.Run("url with prefix is valid and enabled", func(t *testing.T) {
		cfg := &Config{NATSURL: "nats://localhost:4222", SubjectPrefix: "screend.alerts"}
		require.NoError(t, cfg.Validate())
		assert.True(t, cfg.Enabled())
	})

	t.Run("url without prefix is rejected", func(t *testing.T) {
		cfg := &Config{NATSURL: "nats://localhost:4222"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "subject_prefix")
	})
}

func TestNewNATSDisabled(t *testing.T) {
	pub, err := NewNATS(&Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &NoopPublisher{}, pub)
}

func TestNoopPublisher(t *testing.T) {
	pub := &NoopPublisher{}
	assert.NoError(t, pub.Publish(context.Background(), Alert{Kind: KindCrisis}))
	pub.Close()
}
