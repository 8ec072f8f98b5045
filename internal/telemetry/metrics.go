// Package telemetry provides structured logging setup and Prometheus metrics.
//
// Metrics are registered against the default registry and served by the API
// router at GET /metrics when METRICS_ENABLED is true.
//
// HTTP metrics label requests by Gin route template (c.FullPath()), never by
// raw URL, so church and user ids do not inflate label cardinality.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics, labelled by method, route template and status code.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed, by method, route template, and status code.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, by method and route template.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// Authorization metrics.
//
// GateDecisionsTotal is labelled by gate name and outcome ("allow", "deny",
// "missing_id", "unauthenticated").
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "authz_gate_decisions_total",
		Help: "Total number of authorization gate decisions, by gate and outcome.",
	},
	[]string{"gate", "outcome"},
)

// Pagination metrics.
//
// PaginationCountQueriesTotal counts the extra count query offset mode issues
// on every call; compare with rate(pagination_requests_total{mode="offset"}).
var (
	PaginationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_requests_total",
			Help: "Total number of page reads, by mode (offset or cursor).",
		},
		[]string{"mode"},
	)

	PaginationCountQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pagination_count_queries_total",
			Help: "Total number of count queries issued by offset pagination.",
		},
	)
)

// Background job metrics.
var (
	StatsJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "church_stats_jobs_total",
			Help: "Total number of church stats recount jobs, by result (ok, retry, failed, dropped).",
		},
		[]string{"result"},
	)

	StatsQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "church_stats_queue_depth",
			Help: "Current number of queued church stats recount jobs.",
		},
	)
)
