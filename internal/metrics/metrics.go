// Forkcast - Time-Aware Dining Recommendations
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Package metrics provides Prometheus instrumentation for Forkcast.
//
// Collectors cover the heart ledger (mutations, rollover, storage
// latency), the recommendation engine (request volume, latency, cache
// efficiency), and the HTTP API. All collectors are registered with the
// default registry via promauto and exported at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ledger Metrics
	HeartMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_heart_mutations_total",
			Help: "Total number of heart mutations applied to the daily ledger",
		},
		[]string{"kind", "action"}, // kind: "venue"|"menu_item", action: "like"|"unlike"|"remove"
	)

	LedgerOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Duration of ledger storage operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	LedgerOpErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operation_errors_total",
			Help: "Total number of ledger storage operation errors",
		},
		[]string{"operation"},
	)

	RolloverRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_rollover_runs_total",
			Help: "Total number of day-boundary rollover invocations",
		},
		[]string{"outcome"}, // "transferred", "noop", "error"
	)

	RolloverMigratedEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_rollover_migrated_events_total",
			Help: "Total number of heart events migrated from the daily buffer to the archive",
		},
	)

	// Recommendation Engine Metrics
	RecommendRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_request_duration_seconds",
			Help:    "Recommendation pipeline duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendEmptyResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_empty_results_total",
			Help: "Total number of recommendation requests that returned no entries",
		},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)

// RecordHeartMutation increments the mutation counter for a kind/action pair.
func RecordHeartMutation(kind, action string) {
	HeartMutations.WithLabelValues(kind, action).Inc()
}

// ObserveLedgerOp records the duration of a ledger storage operation and
// counts the error if err is non-nil.
func ObserveLedgerOp(operation string, start time.Time, err error) {
	LedgerOpDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		LedgerOpErrors.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records an API request with its response status.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
