// Package metrics exposes Prometheus counters for HTTP traffic and review requests.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests.
	// Labels: method, route, status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency.
	// Labels: method, route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"method", "route"},
	)

	// ReviewRequestsTotal counts review_request rows created.
	// Labels: source (ui, api)
	ReviewRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_requests_created_total",
			Help: "Total number of review requests recorded",
		},
		[]string{"source"},
	)
)

// ObserveHTTP records one finished request. Unmatched routes share one label
// so arbitrary paths cannot grow the label set.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordReviewRequests adds n created review requests for source.
func RecordReviewRequests(source string, n int) {
	if n <= 0 {
		return
	}
	ReviewRequestsTotal.WithLabelValues(source).Add(float64(n))
}
