package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SubmissionsTotal counts submission attempts by outcome
// (success, invalid, conflict, invariant, error).
var SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "questbets_submissions_total",
	Help: "Bet submission attempts by outcome",
}, []string{"result"})

// CatalogReadsTotal counts catalog list requests
var CatalogReadsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "questbets_catalog_reads_total",
	Help: "Bet catalog list requests",
})

// HTTPRequestDuration observes request latency per route and status
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "questbets_http_request_duration_seconds",
	Help:    "HTTP request latency",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path", "status"})
