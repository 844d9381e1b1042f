package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for SkyBroker
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	QuotesComputedTotal   prometheus.CounterVec
	MatchesTotal          prometheus.CounterVec
	MatchCandidates       prometheus.Histogram
	BookingsTotal         prometheus.CounterVec
	EmptyLegsCreatedTotal prometheus.CounterVec
	CommissionAmount      prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skybroker_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skybroker_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "skybroker_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skybroker_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skybroker_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		QuotesComputedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skybroker_quotes_computed_total",
				Help: "Total price quotes computed by kind (direct, simulate, match)",
			},
			[]string{"kind"},
		),
		MatchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skybroker_matches_total",
				Help: "Total match requests by result (matched, no_jet, error)",
			},
			[]string{"result"},
		),
		MatchCandidates: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "skybroker_match_candidates",
				Help:    "Fleet candidates evaluated per match request",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
			},
		),
		BookingsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skybroker_bookings_total",
				Help: "Total booking transitions by status",
			},
			[]string{"status"},
		),
		EmptyLegsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skybroker_empty_legs_created_total",
				Help: "Total empty legs created by source (auto, manual)",
			},
			[]string{"source"},
		),
		CommissionAmount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "skybroker_commission_amount_total",
				Help: "Cumulative commission recorded on accepted bookings",
			},
		),
	}
}
