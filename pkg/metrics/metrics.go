package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_fetch_duration_seconds",
			Help:    "Duration of full movie catalog fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CatalogFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_total",
			Help: "Total number of movie catalog fetches by result",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the last fetched catalog",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CommentStoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comment_store_operations_total",
			Help: "Total number of comment store operations",
		},
		[]string{"driver", "operation", "result"},
	)
)
