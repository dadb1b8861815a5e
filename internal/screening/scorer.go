package screening

// evaluate applies a compiled pattern set to normalized text and sums the
// weights of patterns that fired. Patterns are independent and each fires at
// most once: matching is a boolean test, not an occurrence count.
func evaluate(normalized string, patterns []compiledPattern, threshold int) ConditionSummary {
	summary := ConditionSummary{
		Matches: []string{},
	}

	for _, p := range patterns {
		if p.re.MatchString(normalized) {
			summary.Score += p.Weight
			summary.Matches = append(summary.Matches, p.Description)
		}
	}

	summary.ThresholdMet = summary.Score >= threshold
	summary.Confidence = tierFor(summary.Score, threshold)

	return summary
}

// tierFor buckets a score relative to its category threshold. A confidence is
// produced even below the threshold; ThresholdMet is the only gate.
func tierFor(score, threshold int) Confidence {
	switch {
	case score >= threshold+3:
		return ConfidenceHigh
	case score >= threshold+1:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
