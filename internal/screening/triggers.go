package screening

import "github.com/havenlabs/screend/internal/textnorm"

// DetectTriggers maps the message to zero or more trigger tags. Each bucket
// is an OR over its patterns and contributes its tag at most once; tags come
// back in bucket declaration order, so duplicates are impossible.
func (s *screener) DetectTriggers(message string) []string {
	normalized := textnorm.Normalize(message)

	tags := []string{}
	for _, bucket := range s.config.compiledTriggers {
		for _, re := range bucket.patterns {
			if re.MatchString(normalized) {
				tags = append(tags, bucket.tag)
				break
			}
		}
	}

	return tags
}
