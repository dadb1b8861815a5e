package screening

import "github.com/havenlabs/screend/internal/textnorm"

// DetectDistortions flags cognitive distortion labels whose cue pattern
// matched, in declaration order (0-3 entries).
func (s *screener) DetectDistortions(message string) []string {
	normalized := textnorm.Normalize(message)

	labels := []string{}
	for _, d := range s.config.compiledDistortions {
		if d.re.MatchString(normalized) {
			labels = append(labels, d.label)
		}
	}

	return labels
}
