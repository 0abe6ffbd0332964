package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors exposed on /metrics. Record
// methods are no-ops on a nil *Metrics.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimitHits       *prometheus.CounterVec

	GoogleCalls     *prometheus.CounterVec // by api and outcome (ok, error, retried)
	GoogleSyncRuns  *prometheus.CounterVec // by kind (calendar, contacts) and outcome
	GoogleAutoSync  prometheus.Gauge       // 1 while the auto-sync loops run
	EventsPublished *prometheus.CounterVec // by sink and outcome
	ImportedRows    *prometheus.CounterVec // by entity and outcome (created, skipped, error)
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magsav_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "magsav_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magsav_rate_limit_hits_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
			[]string{"path"},
		),
		GoogleCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magsav_google_api_calls_total",
				Help: "Google API calls by api and outcome",
			},
			[]string{"api", "outcome"},
		),
		GoogleSyncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magsav_google_sync_runs_total",
				Help: "Google auto-sync runs by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		GoogleAutoSync: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "magsav_google_auto_sync_running",
				Help: "1 when the Google auto-sync loops are running",
			},
		),
		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magsav_events_published_total",
				Help: "Domain events published by sink and outcome",
			},
			[]string{"sink", "outcome"},
		),
		ImportedRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "magsav_import_rows_total",
				Help: "CSV import rows by entity and outcome",
			},
			[]string{"entity", "outcome"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordRateLimitHit(path string) {
	if m == nil {
		return
	}
	m.RateLimitHits.WithLabelValues(path).Inc()
}

func (m *Metrics) RecordGoogleCall(api, outcome string) {
	if m == nil {
		return
	}
	m.GoogleCalls.WithLabelValues(api, outcome).Inc()
}

func (m *Metrics) RecordSyncRun(kind string, ok bool) {
	if m == nil {
		return
	}
	m.GoogleSyncRuns.WithLabelValues(kind, outcome(ok)).Inc()
}

func (m *Metrics) SetAutoSyncRunning(running bool) {
	if m == nil {
		return
	}
	if running {
		m.GoogleAutoSync.Set(1)
		return
	}
	m.GoogleAutoSync.Set(0)
}

func (m *Metrics) RecordEvent(sink string, ok bool) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(sink, outcome(ok)).Inc()
}

func (m *Metrics) RecordImport(entity string, created, skipped, failed int) {
	if m == nil {
		return
	}
	m.ImportedRows.WithLabelValues(entity, "created").Add(float64(created))
	m.ImportedRows.WithLabelValues(entity, "skipped").Add(float64(skipped))
	m.ImportedRows.WithLabelValues(entity, "error").Add(float64(failed))
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
