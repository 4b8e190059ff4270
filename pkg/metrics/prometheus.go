// Package metrics provides Prometheus metrics for the xscout engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer
	gatherer         prometheus.Gatherer

	// Dataset metrics - the one-time load boundary
	datasetPlayers      prometheus.Gauge
	datasetLoadDuration prometheus.Histogram

	// Engine metrics - per-computation counters and latency
	fitComputations    prometheus.Counter
	similarityQueries  prometheus.Counter
	fitLatency         prometheus.Histogram
	similarityLatency  prometheus.Histogram
	leaderboardQueries prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "xscout",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
		gatherer:         prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_players",
		Help:      "Number of players in the loaded pool",
	})
	m.datasetLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_seconds",
		Help:      "Duration of the one-time dataset load",
		Buckets:   m.histogramBuckets,
	})

	m.fitComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fit_computations_total",
		Help:      "Total role-fit ranking computations",
	})
	m.similarityQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similarity_queries_total",
		Help:      "Total similarity shortlist computations",
	})
	m.leaderboardQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_queries_total",
		Help:      "Total leaderboard reads served",
	})
	m.fitLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fit_latency_ms",
		Help:      "Role-fit ranking latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.similarityLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "similarity_latency_ms",
		Help:      "Similarity shortlist latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Errors by endpoint, method, and type",
	}, []string{"endpoint", "method", "type"})
}

// SetDatasetPlayers records the loaded pool size.
func SetDatasetPlayers(n int) {
	if globalManager.enabled {
		globalManager.datasetPlayers.Set(float64(n))
	}
}

// ObserveDatasetLoad records the dataset load duration in seconds.
func ObserveDatasetLoad(seconds float64) {
	if globalManager.enabled {
		globalManager.datasetLoadDuration.Observe(seconds)
	}
}

// RecordFitComputation records one role-fit ranking and its latency.
func RecordFitComputation(latencyMs float64) {
	if globalManager.enabled {
		globalManager.fitComputations.Inc()
		globalManager.fitLatency.Observe(latencyMs)
	}
}

// RecordSimilarityQuery records one shortlist computation and its latency.
func RecordSimilarityQuery(latencyMs float64) {
	if globalManager.enabled {
		globalManager.similarityQueries.Inc()
		globalManager.similarityLatency.Observe(latencyMs)
	}
}

// RecordLeaderboardQuery records one leaderboard read.
func RecordLeaderboardQuery() {
	if globalManager.enabled {
		globalManager.leaderboardQueries.Inc()
	}
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
	}
}

// RecordErrorByEndpoint records an error for an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// Registry returns the gatherer this manager's metrics are exposed from.
func (m *Manager) Registry() prometheus.Gatherer {
	return m.gatherer
}

// GetRegistry returns the registry the global manager exposes metrics from.
func GetRegistry() prometheus.Gatherer {
	return globalManager.Registry()
}
