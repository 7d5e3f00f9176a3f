package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auditdex",
			Name:      "searches_total",
			Help:      "Total number of search executions",
		},
		[]string{"mode", "outcome"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "auditdex",
			Name:      "search_duration_seconds",
			Help:      "Search execution duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"mode"},
	)

	SearchMatched = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "auditdex",
			Name:      "search_matched_records",
			Help:      "Matched record count per search after filtering",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100, 250, 500, 1000},
		},
	)

	AnswerRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auditdex",
			Name:      "answer_requests_total",
			Help:      "Total number of answer completions",
		},
		[]string{"model", "status"},
	)

	AnswerRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "auditdex",
			Name:      "answer_request_duration_seconds",
			Help:      "Answer completion duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(SearchMatched)
	prometheus.MustRegister(AnswerRequestsTotal)
	prometheus.MustRegister(AnswerRequestDuration)
	searchMetricsRegistered = true
}

// ObserveSearch records one search execution.
func ObserveSearch(mode string, matched int, elapsed time.Duration) {
	outcome := "hit"
	if matched == 0 {
		outcome = "zero"
	}
	SearchesTotal.WithLabelValues(mode, outcome).Inc()
	SearchDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	SearchMatched.Observe(float64(matched))
}

// ObserveAnswer records one answer completion.
func ObserveAnswer(model string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	AnswerRequestsTotal.WithLabelValues(model, status).Inc()
	AnswerRequestDuration.WithLabelValues(model).Observe(elapsed.Seconds())
}
