// Package metrics defines the Prometheus collectors shared across the app.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message metrics
var (
	// MessagesCreatedTotal tracks created messages by kind (root/reply)
	MessagesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_created_total",
			Help: "Total messages created, by message kind",
		},
		[]string{"kind"},
	)

	// SentimentScore tracks the distribution of write-time sentiment scores
	SentimentScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "message_sentiment_score",
			Help:    "Distribution of sentiment scores computed at message creation",
			Buckets: []float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75, 1},
		},
	)
)

// Reaction metrics
var (
	// ReactionsTotal tracks reaction proposals by kind and outcome
	// (accepted, duplicate, invalid_kind)
	ReactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reactions_total",
			Help: "Total reaction proposals by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)
)

// Analytics metrics
var (
	// AnalyticsQueryDuration tracks analytics computation latency by query
	AnalyticsQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_query_duration_seconds",
			Help:    "Analytics query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// AnalyticsCacheOps tracks analytics cache lookups by result (hit/miss/error)
	AnalyticsCacheOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_cache_operations_total",
			Help: "Analytics cache lookups by result",
		},
		[]string{"result"},
	)
)

// QueryTimer starts a latency timer for the named analytics query. Call
// ObserveDuration on the returned timer when the query completes.
func QueryTimer(query string) *prometheus.Timer {
	return prometheus.NewTimer(AnalyticsQueryDuration.WithLabelValues(query))
}
