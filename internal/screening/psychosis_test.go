package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPsychosis(t *testing.T) {
	s := MustNew(nil)

	t.Run("direct keyword triggers", func(t *testing.T) {
		result := s.DetectPsychosis("I think I might be experiencing psychosis.")

		assert.True(t, result.HasIndicators)
		assert.Equal(t, []string{"psychosis mention"}, result.Matches)
		assert.Equal(t, ConfidenceLow, result.Confidence)
	})

	t.Run("agency near surveillance phrase triggers", func(t *testing.T) {
		result := s.DetectPsychosis("The CIA is following me everywhere I go.")

		assert.True(t, result.HasIndicators)
		assert.Equal(t, []string{"agency+surveillance"}, result.Matches)
		assert.Equal(t, ConfidenceLow, result.Confidence)
	})

	t.Run("stacked indicators reach high confidence", func(t *testing.T) {
		result := s.DetectPsychosis("I keep hallucinating and hearing voices, like someone is following me.")

		assert.True(t, result.HasIndicators)
		assert.Equal(t, ConfidenceHigh, result.Confidence)
		assert.Contains(t, result.Matches, "hallucination language")
		assert.Contains(t, result.Matches, "auditory hallucination")
		assert.Contains(t, result.Matches, "persecution")
	})

	t.Run("two contextual hits reach medium confidence", func(t *testing.T) {
		result := s.DetectPsychosis("I keep hearing voices and seeing shadows that aren't there.")

		assert.True(t, result.HasIndicators)
		assert.Equal(t, ConfidenceMedium, result.Confidence)
	})

	t.Run("single contextual hit stays below threshold", func(t *testing.T) {
		result := s.DetectPsychosis("I keep hearing things at night.")

		assert.False(t, result.HasIndicators)
		assert.Empty(t, result.Matches)
		assert.NotNil(t, result.Matches)
		assert.Equal(t, ConfidenceLow, result.Confidence)
	})

	t.Run("spanish fraud message does not false-positive", func(t *testing.T) {
		// After normalization nothing here is a whole agency token, so the
		// windowed check must not anchor on substrings of Spanish words.
		result := s.DetectPsychosis("Tanto a mi madre como a mí nos estafaron, el piso está pendiente de desahucio.")

		assert.False(t, result.HasIndicators)
		assert.Empty(t, result.Matches)
	})

	t.Run("agency mention without surveillance phrase", func(t *testing.T) {
		result := s.DetectPsychosis("I watched a documentary about the FBI yesterday.")

		assert.False(t, result.HasIndicators)
		assert.Empty(t, result.Matches)
	})

	t.Run("surveillance phrase too far from agency token", func(t *testing.T) {
		result := s.DetectPsychosis("The CIA was on the news this morning but my neighbor keeps watching me.")

		assert.False(t, result.HasIndicators)
	})

	t.Run("empty message", func(t *testing.T) {
		result := s.DetectPsychosis("")

		assert.False(t, result.HasIndicators)
		assert.Empty(t, result.Matches)
		assert.Equal(t, ConfidenceLow, result.Confidence)
	})
}

func TestPsychosisTier(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  Confidence
	}{
		{"seven is high", 7, ConfidenceHigh},
		{"above seven is high", 10, ConfidenceHigh},
		{"four is medium", 4, ConfidenceMedium},
		{"six is medium", 6, ConfidenceMedium},
		{"three is low", 3, ConfidenceLow},
		{"zero is low", 0, ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, psychosisTier(tt.score))
		})
	}
}
