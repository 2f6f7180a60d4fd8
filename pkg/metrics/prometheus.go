// Package metrics provides Prometheus metrics for the fastbreak simulation service.
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
	registry         prometheus.Registerer

	// Simulation metrics
	possessionsSimulated prometheus.Counter
	eventsRecorded       *prometheus.CounterVec
	shotsMade            prometheus.Counter
	shotProbability      prometheus.Histogram

	// Queue metrics
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueEnqueueErrors prometheus.Counter

	// Worker metrics
	workerCount       prometheus.Gauge
	workerErrors      prometheus.Counter
	workerPossessions prometheus.Histogram

	// Box score metrics
	boxScorePlayers prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fastbreak",
		subsystem:        "sim",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// Buckets spanning the open probability interval.
var probabilityBuckets = []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95} //nolint:gochecknoglobals // shared bucket layout

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.possessionsSimulated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "possessions_simulated_total",
		Help:      "Total number of possessions run through the model",
	})

	m.eventsRecorded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_recorded_total",
		Help:      "Total telemetry events recorded, labeled by event kind",
	}, []string{"kind"})

	m.shotsMade = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "shots_made_total",
		Help:      "Total made shots across all sessions",
	})

	m.shotProbability = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "shot_probability",
		Help:      "Distribution of model shot probabilities",
		Buckets:   probabilityBuckets,
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current number of queued possessions",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_capacity",
		Help:      "Configured possession queue capacity",
	})

	m.queueEnqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueue_errors_total",
		Help:      "Total enqueue rejections (queue full or closed)",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of simulation workers",
	})

	m.workerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_errors_total",
		Help:      "Total worker processing errors",
	})

	m.workerPossessions = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_possession_duration_seconds",
		Help:      "Histogram of per-possession simulation duration",
		Buckets:   m.histogramBuckets,
	})

	m.boxScorePlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "box_score_players",
		Help:      "Number of players tracked in the box-score store",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration by endpoint and method",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method"})
}

// Package-level helpers on the global manager.

// RecordPossessionSimulated increments the simulated-possession counter.
func RecordPossessionSimulated() {
	globalManager.possessionsSimulated.Inc()
}

// RecordEvent counts one recorded telemetry event of the given kind.
func RecordEvent(kind string) {
	globalManager.eventsRecorded.WithLabelValues(kind).Inc()
}

// RecordShotMake increments the made-shot counter.
func RecordShotMake() {
	globalManager.shotsMade.Inc()
}

// ObserveShotProbability records a model shot probability.
func ObserveShotProbability(p float64) {
	globalManager.shotProbability.Observe(p)
}

// UpdateQueueSize sets the current queue depth.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the configured queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// RecordQueueEnqueueError counts an enqueue rejection.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// UpdateWorkerCount sets the worker gauge.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordWorkerError counts a worker processing error.
func RecordWorkerError() {
	globalManager.workerErrors.Inc()
}

// ObservePossessionDuration records how long one possession took to simulate.
func ObservePossessionDuration(seconds float64) {
	globalManager.workerPossessions.Observe(seconds)
}

// UpdateBoxScorePlayers sets the tracked-player gauge.
func UpdateBoxScorePlayers(count int) {
	globalManager.boxScorePlayers.Set(float64(count))
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in seconds.
func RecordHTTPRequestDuration(endpoint, method string, seconds float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(seconds)
}

// GetRegistry returns the custom registry for the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
