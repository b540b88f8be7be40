// File: internal/infra/metrics/session.go
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutor_queries_total",
			Help: "Count of handled messages per classified category.",
		},
		[]string{"category"},
	)

	degradedTurnsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tutor_degraded_turns_total",
			Help: "Turns answered with the recovery message after a completion failure.",
		},
	)

	sessionResetsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tutor_session_resets_total",
			Help: "Explicit conversation resets.",
		},
	)

	promptTokensTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tutor_prompt_tokens_total",
			Help: "Sum of prompt tokens sent to the completion provider (best effort).",
		},
	)

	completionLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tutor_completion_latency_ms",
			Help:    "Completion call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
		[]string{"provider", "model", "success"},
	)
)

func init() {
	register(queriesTotal, degradedTurnsTotal, sessionResetsTotal, promptTokensTotal, completionLatencyMs)
}

func IncQuery(category string) {
	queriesTotal.WithLabelValues(category).Inc()
}

func IncDegradedTurn() {
	degradedTurnsTotal.Inc()
}

func IncSessionReset() {
	sessionResetsTotal.Inc()
}

func AddPromptTokens(n int) {
	if n > 0 {
		promptTokensTotal.Add(float64(n))
	}
}

func ObserveCompletion(provider, model string, success bool, elapsed time.Duration) {
	completionLatencyMs.WithLabelValues(provider, model, strconv.FormatBool(success)).
		Observe(float64(elapsed.Milliseconds()))
}
