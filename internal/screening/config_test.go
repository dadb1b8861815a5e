package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("empty config fills defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.Validate())

		assert.Len(t, cfg.compiledCategories, 7)
		assert.Len(t, cfg.compiledTriggers, 8)
		assert.Len(t, cfg.compiledDistortions, 3)
		assert.Equal(t, 3, cfg.Psychosis.Threshold)
		assert.Equal(t, 4, cfg.Psychosis.Agency.Window)
		assert.NotNil(t, cfg.compiledPsychosis.anchor)
	})

	t.Run("default catalogs compile", func(t *testing.T) {
		require.NoError(t, DefaultConfig().Validate())
	})

	t.Run("missing canonical category", func(t *testing.T) {
		cfg := &Config{
			Categories: []CategoryConfig{
				{Name: CategoryPanic, Threshold: 4, Patterns: []Pattern{
					{Regex: `panic`, Weight: 2, Description: "panic"},
				}},
			},
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not defined")
	})

	t.Run("category threshold must be positive", func(t *testing.T) {
		cats := DefaultCategories()
		cats[0].Threshold = 0
		cfg := &Config{Categories: cats}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "threshold must be > 0")
	})

	t.Run("pattern weight must be positive", func(t *testing.T) {
		cats := DefaultCategories()
		cats[0].Patterns[0].Weight = 0
		cfg := &Config{Categories: cats}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight must be > 0")
	})

	t.Run("invalid category regex", func(t *testing.T) {
		cats := DefaultCategories()
		cats[0].Patterns[0].Regex = `[unclosed`
		cfg := &Config{Categories: cats}
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid trigger regex", func(t *testing.T) {
		cfg := &Config{
			Triggers: []TriggerConfig{
				{Tag: TriggerWork, Patterns: []string{`(bad`}},
			},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid distortion regex", func(t *testing.T) {
		cfg := &Config{
			Distortions: []DistortionConfig{
				{Label: DistortionShould, Pattern: `*bad`},
			},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid agency anchor", func(t *testing.T) {
		ps := DefaultPsychosis()
		ps.Agency.Anchor = `(unclosed`
		cfg := &Config{Psychosis: ps}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid anchor")
	})

	t.Run("partial psychosis config keeps overrides", func(t *testing.T) {
		cfg := &Config{
			Psychosis: PsychosisConfig{
				Threshold: 5,
				Direct: []Pattern{
					{Regex: `psychosis`, Weight: 3, Description: "psychosis mention"},
				},
			},
		}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 5, cfg.compiledPsychosis.threshold)
		assert.Len(t, cfg.compiledPsychosis.direct, 1)
		assert.Empty(t, cfg.compiledPsychosis.contextual)
		assert.Nil(t, cfg.compiledPsychosis.anchor)
	})
}

func TestBidirectional(t *testing.T) {
	patterns := bidirectional(`foo`, `bar`, 10, 3, "pair")
	require.Len(t, patterns, 2)
	assert.Equal(t, `foo.{0,10}bar`, patterns[0].Regex)
	assert.Equal(t, `bar.{0,10}foo`, patterns[1].Regex)
	for _, p := range patterns {
		assert.Equal(t, 3, p.Weight)
		assert.Equal(t, "pair", p.Description)
	}
}
