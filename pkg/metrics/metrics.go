package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GuideResults counts finished guide generations by provenance.
	GuideResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voyago",
		Name:      "guide_results_total",
		Help:      "Guide generations by source (ai_generated or static_fallback).",
	}, []string{"source"})

	// ModelAttempts counts individual provider attempts by model and outcome.
	ModelAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voyago",
		Name:      "model_attempts_total",
		Help:      "Text-generation attempts by model and outcome (ok, error, rejected).",
	}, []string{"model", "outcome"})

	// GenerationSeconds observes wall time of the full guide pipeline.
	GenerationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "voyago",
		Name:      "guide_generation_seconds",
		Help:      "End-to-end guide pipeline latency.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 9),
	})
)
