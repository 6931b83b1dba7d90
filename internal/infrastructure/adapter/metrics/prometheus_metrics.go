package metrics

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
)

const namespace = "point_ledger"

var _ core.LedgerMetrics = (*PrometheusMetrics)(nil)

// PrometheusMetrics records ledger and HTTP metrics on its own registry
type PrometheusMetrics struct {
	registry *prometheus.Registry

	mutationsTotal  *prometheus.CounterVec
	mutationLatency *prometheus.HistogramVec
	lockWait        prometheus.Histogram
	activeSlots     prometheus.Gauge

	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them on a fresh registry
func NewPrometheusMetrics() (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		mutationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mutations_total",
				Help:      "Charge and use attempts by outcome",
			},
			[]string{"operation", "outcome"},
		),
		mutationLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "mutation_duration_seconds",
				Help:      "Time from request to commit or rejection, lock wait included",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		lockWait: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "user_lock_wait_seconds",
				Help:      "Time spent waiting for a user's slot",
				Buckets:   []float64{0, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
		),
		activeSlots: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "user_slots",
				Help:      "Number of users with a lock slot",
			},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"route", "method", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
	}

	all := []prometheus.Collector{
		m.mutationsTotal,
		m.mutationLatency,
		m.lockWait,
		m.activeSlots,
		m.requestsTotal,
		m.requestLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range all {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return m, nil
}

// ObserveMutation records one charge or use attempt
func (m *PrometheusMetrics) ObserveMutation(operation string, outcome string, elapsed time.Duration) {
	m.mutationsTotal.WithLabelValues(operation, outcome).Inc()
	m.mutationLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveLockWait records how long a caller waited for its user's slot
func (m *PrometheusMetrics) ObserveLockWait(elapsed time.Duration) {
	m.lockWait.Observe(elapsed.Seconds())
}

// SetActiveUserSlots reports how many per-user slots exist
func (m *PrometheusMetrics) SetActiveUserSlots(count int) {
	m.activeSlots.Set(float64(count))
}

// ObserveRequest records one served HTTP request
func (m *PrometheusMetrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.requestsTotal.WithLabelValues(route, method, code).Inc()
	m.requestLatency.WithLabelValues(route, method, code).Observe(elapsed.Seconds())
}

// RegisterDBStats exports the pool statistics of db under the given name
func (m *PrometheusMetrics) RegisterDBStats(db *sql.DB, name string) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, name)); err != nil {
		return fmt.Errorf("failed to register db stats collector: %w", err)
	}
	return nil
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
