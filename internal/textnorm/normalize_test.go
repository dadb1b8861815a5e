package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases", func(t *testing.T) {
		assert.Equal(t, "hello world", Normalize("Hello WORLD"))
	})

	t.Run("strips diacritics", func(t *testing.T) {
		assert.Equal(t, "esta muy dificil la ansiedad", Normalize("Está muy difícil la ansiedad"))
	})

	t.Run("removes punctuation", func(t *testing.T) {
		assert.Equal(t, "panic attack my heart is racing", Normalize("panic attack, my heart is racing!!"))
	})

	t.Run("punctuation is dropped not spaced", func(t *testing.T) {
		assert.Equal(t, "attackmy", Normalize("attack—my"))
	})

	t.Run("keeps apostrophes", func(t *testing.T) {
		assert.Equal(t, "i can't breathe", Normalize("I can't breathe."))
	})

	t.Run("drops curly quotes without splitting words", func(t *testing.T) {
		assert.Equal(t, "i cant breathe", Normalize("I can’t breathe"))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "a b c", Normalize("  a \t b\n\n c  "))
	})

	t.Run("keeps digits", func(t *testing.T) {
		assert.Equal(t, "mi6 is here", Normalize("MI6 is here"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
	})

	t.Run("only punctuation", func(t *testing.T) {
		assert.Equal(t, "", Normalize("?!—…«»"))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"Está muy difícil",
			"I can't breathe!!",
			"  a \t b\n c  ",
			"",
			"Tanto a mi madre como a mí nos estafaron.",
		}
		for _, in := range inputs {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once), "input %q", in)
		}
	})
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"the", "cia", "is", "following", "me"}, Tokens("The CIA is following me."))
	assert.Empty(t, Tokens("—"))
}
