package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ListingResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "portfolio_listing_results",
			Help:    "Number of projects returned per listing request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	ListingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_listing_failures_total",
			Help: "Total number of failed listing requests",
		},
		[]string{"reason"},
	)

	FieldResolutionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_field_resolution_failures_total",
			Help: "Auxiliary field lookups that failed and were nulled",
		},
		[]string{"field"},
	)
)
