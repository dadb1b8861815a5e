package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTriggers(t *testing.T) {
	s := MustNew(nil)

	t.Run("work trigger", func(t *testing.T) {
		tags := s.DetectTriggers("My boss keeps piling on deadlines at work and I am overwhelmed.")
		assert.Equal(t, []string{TriggerWork}, tags)
	})

	t.Run("tags come back in bucket order", func(t *testing.T) {
		tags := s.DetectTriggers("Driving to work in traffic makes my anxiety so much worse.")
		assert.Equal(t, []string{TriggerDriving, TriggerWork}, tags)
	})

	t.Run("one tag per bucket", func(t *testing.T) {
		tags := s.DetectTriggers("Money problems, unpaid bills, and debt are piling up.")
		assert.Equal(t, []string{TriggerFinancial}, tags)
	})

	t.Run("relationship trigger", func(t *testing.T) {
		tags := s.DetectTriggers("My partner and I are talking about divorce.")
		assert.Equal(t, []string{TriggerRelationships}, tags)
	})

	t.Run("future uncertainty trigger", func(t *testing.T) {
		tags := s.DetectTriggers("I don't know what to do about the future.")
		assert.Equal(t, []string{TriggerFuture}, tags)
	})

	t.Run("word boundaries respected", func(t *testing.T) {
		// "network" must not hit the work bucket.
		tags := s.DetectTriggers("The network was slow tonight.")
		assert.Empty(t, tags)
	})

	t.Run("no triggers", func(t *testing.T) {
		tags := s.DetectTriggers("Just saying hello.")
		assert.Empty(t, tags)
		assert.NotNil(t, tags)
	})
}
