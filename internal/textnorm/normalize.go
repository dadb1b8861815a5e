// Package textnorm normalizes chat message text for pattern matching.
//
// All screening detectors share one normal form: lowercase ASCII letters,
// digits, apostrophes, and single spaces. Accented input (Spanish is common
// in production traffic) is folded to its ASCII base so that "ansiedad" and
// "está" match ASCII-written patterns.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes accented characters and drops the combining marks.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text, strips diacritics, removes everything except
// ASCII letters, digits, whitespace, and apostrophes, and collapses runs of
// whitespace to single spaces. Total over any input; idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)

	folded, _, err := transform.String(foldMarks, lower)
	if err != nil {
		// Transform failure leaves accents in place; the character filter
		// below still produces a well-formed result.
		folded = lower
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		switch {
		case unicode.IsSpace(r):
			if b.Len() > 0 {
				pendingSpace = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '\'':
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		default:
			// Punctuation and non-ASCII leftovers are dropped entirely, not
			// replaced with a space: "can’t" becomes "cant", not "can t".
		}
	}

	return b.String()
}

// Tokens returns the whitespace-delimited tokens of the normalized form.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}
