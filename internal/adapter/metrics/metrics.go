package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Vote Metrics
var (
	// TogglesTotal tracks completed like toggles by resulting action
	TogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_toggles_total",
			Help: "Completed like toggles by resulting action (liked/unliked)",
		},
		[]string{"action"},
	)

	// ToggleDuration tracks end-to-end toggle latency in seconds
	ToggleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vote_toggle_duration_seconds",
			Help:    "Like toggle duration in seconds, including the store round trip",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// TogglesRejectedTotal tracks toggles refused before reaching the store
	TogglesRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_toggles_rejected_total",
			Help: "Toggles rejected before reaching the store, by reason",
		},
		[]string{"reason"},
	)
)

// HTTP Metrics
var (
	// HTTPRequestsTotal tracks HTTP requests by method, route, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route, and status code",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by method and route",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)

// Analytics Metrics
var (
	// AnalyticsCacheHits tracks analytics snapshots served from the Redis cache
	AnalyticsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_cache_hits_total",
			Help: "Analytics snapshots served from the Redis cache",
		},
	)

	// AnalyticsComputes tracks analytics snapshots computed from PostgreSQL
	AnalyticsComputes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analytics_computes_total",
			Help: "Analytics snapshots computed from PostgreSQL",
		},
	)
)

// Redis Operations Metrics
var (
	// RedisOpsTotal tracks total Redis operations by operation type and status
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_operations_total",
			Help: "Total Redis operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// RedisOpDuration tracks Redis operation latency in seconds
	RedisOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// RedisConnectionErrors tracks Redis connection errors
	RedisConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_connection_errors_total",
			Help: "Total Redis connection errors",
		},
	)

	// CircuitBreakerStateChanges tracks circuit breaker state transitions
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)

	// CircuitBreakerState tracks current circuit breaker state (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)
