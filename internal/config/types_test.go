package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	t.Run("unmarshal text", func(t *testing.T) {
		var d Duration
		require.NoError(t, d.UnmarshalText([]byte("1m30s")))
		assert.Equal(t, 90*time.Second, d.Duration())
	})

	t.Run("negative duration rejected", func(t *testing.T) {
		var d Duration
		assert.Error(t, d.UnmarshalText([]byte("-5s")))
	})

	t.Run("invalid duration rejected", func(t *testing.T) {
		var d Duration
		assert.Error(t, d.UnmarshalText([]byte("not a duration")))
	})

	t.Run("marshal text", func(t *testing.T) {
		d := Duration(10 * time.Second)
		text, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "10s", string(text))
	})

	t.Run("marshal json", func(t *testing.T) {
		d := Duration(10 * time.Second)
		data, err := d.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"10s"`, string(data))
	})
}
