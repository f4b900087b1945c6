package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "scoreboard"

// Metrics owns a private registry so tests can build as many instances as they need.
type Metrics struct {
	registry              *prometheus.Registry
	goalsRecorded         *prometheus.CounterVec
	partialReconciliation *prometheus.CounterVec
	finalizeFallback      *prometheus.CounterVec
	warmupRuns            *prometheus.CounterVec
	httpRequests          *prometheus.CounterVec
	httpDuration          *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		goalsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "goals_recorded_total",
			Help:      "Goal events recorded, by sport and own-goal flag.",
		}, []string{"sport", "own_goal"}),
		partialReconciliation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "score_reconciliation_failures_total",
			Help:      "Goal events stored without a matching score update.",
		}, []string{"sport"}),
		finalizeFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "finalize_fallback_total",
			Help:      "Finalize calls that needed a degraded status write.",
		}, []string{"step"}),
		warmupRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "warmup_runs_total",
			Help:      "View warm-up runs by outcome.",
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.goalsRecorded,
		m.partialReconciliation,
		m.finalizeFallback,
		m.warmupRuns,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) GoalRecorded(sportSlug string, ownGoal bool) {
	m.goalsRecorded.WithLabelValues(sportSlug, strconv.FormatBool(ownGoal)).Inc()
}

func (m *Metrics) PartialReconciliation(sportSlug string) {
	m.partialReconciliation.WithLabelValues(sportSlug).Inc()
}

func (m *Metrics) FinalizeFallback(step string) {
	m.finalizeFallback.WithLabelValues(step).Inc()
}

func (m *Metrics) WarmupRun(status string) {
	m.warmupRuns.WithLabelValues(status).Inc()
}

// ObserveHTTP records one finished request. route must be the mux pattern, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, code int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
