package screening

import (
	"strings"

	"github.com/havenlabs/screend/internal/textnorm"
)

// DetectPsychosis scores the message against three pattern groups: direct
// diagnostic keywords, contextual experiential phrases, and the token-window
// agency/surveillance co-occurrence check.
//
// On the non-triggering path Matches is cleared to empty rather than
// reporting sub-threshold hits. This differs from the anxiety summaries,
// which always retain Matches; downstream consumers inspect Matches only when
// HasIndicators is true, so the shape is kept as-is.
func (s *screener) DetectPsychosis(message string) *PsychosisResult {
	normalized := textnorm.Normalize(message)
	ps := s.config.compiledPsychosis

	score := 0
	matches := []string{}

	for _, p := range ps.direct {
		if p.re.MatchString(normalized) {
			score += p.Weight
			matches = append(matches, p.Description)
		}
	}

	for _, p := range ps.contextual {
		if p.re.MatchString(normalized) {
			score += p.Weight
			matches = append(matches, p.Description)
		}
	}

	if hasNearbyMatch(strings.Fields(normalized), ps.anchor, ps.phrases, ps.window) {
		score += ps.agencyWeight
		matches = append(matches, ps.agencyDesc)
	}

	if score < ps.threshold {
		return &PsychosisResult{
			HasIndicators: false,
			Matches:       []string{},
			Confidence:    ConfidenceLow,
		}
	}

	return &PsychosisResult{
		HasIndicators: true,
		Matches:       matches,
		Confidence:    psychosisTier(score),
	}
}

// psychosisTier buckets the accumulated psychosis score. These cut points are
// absolute, unlike the per-category tiers which are threshold-relative.
func psychosisTier(score int) Confidence {
	switch {
	case score >= 7:
		return ConfidenceHigh
	case score >= 4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
