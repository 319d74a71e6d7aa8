// Package metrics provides Prometheus metrics for the analyzer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequestsTotal counts GitHub API calls by endpoint and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "analyzer",
			Name:      "upstream_requests_total",
			Help:      "Total number of GitHub API requests",
		},
		[]string{"endpoint", "outcome"},
	)

	// UpstreamDuration measures GitHub API round trips.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "analyzer",
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of GitHub API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// SearchesTotal counts searches by terminal outcome.
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "analyzer",
			Name:      "searches_total",
			Help:      "Total number of searches by outcome",
		},
		[]string{"outcome"},
	)

	// CommitFetchFailuresTotal counts per-repository commit fetches that were skipped.
	CommitFetchFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "analyzer",
			Name:      "commit_fetch_failures_total",
			Help:      "Per-repository commit fetches that failed and were skipped",
		},
	)

	// SyntheticSeriesTotal counts fallbacks to placeholder commit activity.
	SyntheticSeriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "analyzer",
			Name:      "synthetic_series_total",
			Help:      "Commit aggregations that fell back to a synthetic series",
		},
	)
)

// RecordUpstream records a GitHub API call.
func RecordUpstream(endpoint, outcome string, seconds float64) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	UpstreamDuration.WithLabelValues(endpoint).Observe(seconds)
}

// RecordSearch records the outcome of a search.
func RecordSearch(outcome string) {
	SearchesTotal.WithLabelValues(outcome).Inc()
}

// RecordCommitFetchFailures adds n skipped commit fetches.
func RecordCommitFetchFailures(n int) {
	CommitFetchFailuresTotal.Add(float64(n))
}

// RecordSyntheticSeries records a fallback to synthetic commit activity.
func RecordSyntheticSeries() {
	SyntheticSeriesTotal.Inc()
}
