package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	suggestionOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "songsuggest_suggestions_total",
			Help: "Suggestion requests by outcome",
		},
		[]string{"outcome"},
	)

	modelLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "songsuggest_model_duration_seconds",
			Help:    "Latency of generative model calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
	)
)
