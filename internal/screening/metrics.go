package screening

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesScreened counts messages run through Screen.
	MessagesScreened = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "screend",
			Subsystem: "screening",
			Name:      "messages_total",
			Help:      "Total number of messages screened",
		},
	)

	// CategoryMet counts threshold-met results by category.
	CategoryMet = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "screend",
			Subsystem: "screening",
			Name:      "category_met_total",
			Help:      "Total number of screenings where a category met its threshold",
		},
		[]string{"category"},
	)

	// PsychosisDetected counts screenings with psychosis indicators.
	PsychosisDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "screend",
			Subsystem: "screening",
			Name:      "psychosis_detected_total",
			Help:      "Total number of screenings with psychosis indicators",
		},
	)

	// ScreenDuration tracks how long full screenings take.
	ScreenDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "screend",
			Subsystem: "screening",
			Name:      "duration_seconds",
			Help:      "Duration of full message screenings in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		},
	)
)

// recordScreen updates Prometheus metrics from a finished report. Only
// aggregate counts are recorded; message content never reaches metrics.
func recordScreen(report *Report) {
	MessagesScreened.Inc()
	ScreenDuration.Observe(report.Duration.Seconds())

	if report.Context != nil {
		byCategory := map[string]ConditionSummary{
			CategoryGeneralAnxiety: report.Context.GeneralAnxiety,
			CategoryPanic:          report.Context.Panic,
			CategoryPTSD:           report.Context.PTSD,
			CategoryOCD:            report.Context.OCD,
			CategoryDepression:     report.Context.Depression,
			CategoryCrisis:         report.Context.Crisis,
			CategoryPositive:       report.Context.Positive,
		}
		for name, summary := range byCategory {
			if summary.ThresholdMet {
				CategoryMet.WithLabelValues(name).Inc()
			}
		}
	}

	if report.HasPsychosis() {
		PsychosisDetected.Inc()
	}
}
