package screening

import (
	"regexp"
	"strings"
)

// hasNearbyMatch reports whether any token matched by anchor has one of the
// candidate phrases within window tokens on either side.
//
// The anchor is tested against single tokens, never substrings, so short
// agency names buried inside longer words (common after stripping diacritics
// from Spanish text) cannot anchor a window. The window slice is joined back
// into a string and phrases are searched as substrings, which lets multi-word
// phrases span token boundaries.
func hasNearbyMatch(tokens []string, anchor *regexp.Regexp, phrases []string, window int) bool {
	if anchor == nil || len(phrases) == 0 {
		return false
	}

	for i, tok := range tokens {
		if !anchor.MatchString(tok) {
			continue
		}

		start := i - window
		if start < 0 {
			start = 0
		}
		end := i + window + 1
		if end > len(tokens) {
			end = len(tokens)
		}

		windowText := strings.Join(tokens[start:end], " ")
		for _, phrase := range phrases {
			if strings.Contains(windowText, phrase) {
				return true
			}
		}
	}

	return false
}
