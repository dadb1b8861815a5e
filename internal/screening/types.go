package screening

import "time"

// Confidence is a coarse tier derived from how far a score clears its
// category threshold. Tiers are relative to each category's own threshold and
// are not comparable across categories.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Canonical anxiety category names. Config.Categories must define all seven.
const (
	CategoryGeneralAnxiety = "general_anxiety"
	CategoryPanic          = "panic"
	CategoryPTSD           = "ptsd"
	CategoryOCD            = "ocd"
	CategoryDepression     = "depression"
	CategoryCrisis         = "crisis"
	CategoryPositive       = "positive"
)

// Trigger tags, in detection order.
const (
	TriggerDriving       = "driving_anxiety"
	TriggerWork          = "work"
	TriggerSocial        = "social"
	TriggerHealth        = "health"
	TriggerFinancial     = "financial"
	TriggerRelationships = "relationships"
	TriggerPerformance   = "performance"
	TriggerFuture        = "future_uncertainty"
)

// Cognitive distortion labels, in detection order.
const (
	DistortionAllOrNothing    = "All-or-nothing thinking"
	DistortionShould          = "Should statements"
	DistortionCatastrophizing = "Catastrophizing"
)

// ConditionSummary is the per-category scoring result.
//
// Matches always lists the descriptions of patterns that fired, whether or
// not the threshold was met. Confidence is informational and is computed even
// when ThresholdMet is false.
type ConditionSummary struct {
	Score        int        `json:"score"`
	Matches      []string   `json:"matches"`
	ThresholdMet bool       `json:"threshold_met"`
	Confidence   Confidence `json:"confidence"`
}

// ContextSummary holds one ConditionSummary per anxiety category. All seven
// are populated on every call; callers decide how to combine them.
type ContextSummary struct {
	GeneralAnxiety ConditionSummary `json:"general_anxiety"`
	Panic          ConditionSummary `json:"panic"`
	PTSD           ConditionSummary `json:"ptsd"`
	OCD            ConditionSummary `json:"ocd"`
	Depression     ConditionSummary `json:"depression"`
	Crisis         ConditionSummary `json:"crisis"`
	Positive       ConditionSummary `json:"positive"`
}

// PsychosisResult is the psychosis indicator detection result.
//
// Unlike ConditionSummary, Matches is empty when HasIndicators is false.
// Callers inspect Matches on the triggering path only; keep this shape.
type PsychosisResult struct {
	HasIndicators bool       `json:"has_indicators"`
	Matches       []string   `json:"matches"`
	Confidence    Confidence `json:"confidence"`
}

// Report aggregates every detector over a single message.
type Report struct {
	Context     *ContextSummary  `json:"context"`
	Triggers    []string         `json:"triggers"`
	Distortions []string         `json:"distortions"`
	Psychosis   *PsychosisResult `json:"psychosis"`

	// Duration is how long screening took.
	Duration time.Duration `json:"duration"`
}

// HasCrisis reports whether the crisis category met its threshold.
func (r *Report) HasCrisis() bool {
	return r.Context != nil && r.Context.Crisis.ThresholdMet
}

// HasPsychosis reports whether psychosis indicators were detected.
func (r *Report) HasPsychosis() bool {
	return r.Psychosis != nil && r.Psychosis.HasIndicators
}

// Screener runs the screening detectors over raw message text.
type Screener interface {
	// AnalyzeContext scores the message against all seven anxiety
	// categories and returns every summary regardless of thresholds.
	AnalyzeContext(message string) *ContextSummary

	// DetectTriggers returns the trigger tags whose keyword buckets
	// matched, in declaration order, at most one tag per bucket.
	DetectTriggers(message string) []string

	// DetectDistortions returns the cognitive distortion labels whose
	// cues matched, in declaration order.
	DetectDistortions(message string) []string

	// DetectPsychosis scores direct, contextual, and windowed
	// agency/surveillance psychosis cues.
	DetectPsychosis(message string) *PsychosisResult

	// Screen runs all detectors and aggregates the results.
	Screen(message string) *Report
}
