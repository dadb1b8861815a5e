package screening

import (
	"time"

	"github.com/havenlabs/screend/internal/textnorm"
)

// screener is the default Screener backed by compiled pattern catalogs.
type screener struct {
	config *Config
}

// New creates a Screener from the given configuration. If config is nil,
// DefaultConfig() is used. The configuration is compiled once here; the
// returned Screener is immutable and safe for concurrent use.
func New(cfg *Config) (Screener, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &screener{config: cfg}, nil
}

// MustNew creates a Screener, panicking on error. Intended for the default
// catalogs, which are known valid.
func MustNew(cfg *Config) Screener {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// AnalyzeContext normalizes the message once and scores it against all seven
// category catalogs independently. Every summary is returned regardless of
// which thresholds were met; deciding what to do with a met crisis threshold
// is the caller's concern.
func (s *screener) AnalyzeContext(message string) *ContextSummary {
	normalized := textnorm.Normalize(message)

	return &ContextSummary{
		GeneralAnxiety: s.evaluateCategory(normalized, CategoryGeneralAnxiety),
		Panic:          s.evaluateCategory(normalized, CategoryPanic),
		PTSD:           s.evaluateCategory(normalized, CategoryPTSD),
		OCD:            s.evaluateCategory(normalized, CategoryOCD),
		Depression:     s.evaluateCategory(normalized, CategoryDepression),
		Crisis:         s.evaluateCategory(normalized, CategoryCrisis),
		Positive:       s.evaluateCategory(normalized, CategoryPositive),
	}
}

func (s *screener) evaluateCategory(normalized, name string) ConditionSummary {
	cat := s.config.compiledCategories[name]
	return evaluate(normalized, cat.patterns, cat.threshold)
}

// Screen runs every detector over the message and aggregates the results.
func (s *screener) Screen(message string) *Report {
	start := time.Now()

	report := &Report{
		Context:     s.AnalyzeContext(message),
		Triggers:    s.DetectTriggers(message),
		Distortions: s.DetectDistortions(message),
		Psychosis:   s.DetectPsychosis(message),
	}
	report.Duration = time.Since(start)

	recordScreen(report)
	return report
}

// Compile-time check that screener implements Screener.
var _ Screener = (*screener)(nil)
