package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "market_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "market_operation_duration_seconds",
			Help:    "Duration of timed internal operations.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"op"},
	)

	// Size of each filtered view; the table is small so linear buckets suffice.
	FilteredCities = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "market_filtered_cities",
			Help:    "Number of cities matching each filter interaction.",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
	)

	RecommendedCities = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "market_recommended_cities",
			Help: "Number of cities on the recommendation shortlist.",
		},
	)
)
