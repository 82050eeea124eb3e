package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpDurationBuckets   = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	exportDurationBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 1.5, 2, 3, 5, 10}
)

// Submission results.
const (
	SubmitSucceeded  = "succeeded"
	SubmitIncomplete = "incomplete"
	SubmitFailed     = "export_failed"
	SubmitCanceled   = "canceled"
)

// Metrics holds the Prometheus instruments of the quote service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SessionsStartedTotal prometheus.Counter
	SessionsActive       prometheus.Gauge
	SessionsEvictedTotal prometheus.Counter
	ItemsAddedTotal      *prometheus.CounterVec
	StepTransitionsTotal *prometheus.CounterVec
	SubmissionsTotal     *prometheus.CounterVec
	ExportDuration       prometheus.Histogram
	SnapshotWritesTotal  *prometheus.CounterVec
}

// InitMetrics creates and registers all instruments on reg.
func InitMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mvz_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mvz_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: httpDurationBuckets,
		}, []string{"method", "route"}),

		SessionsStartedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mvz_quote_sessions_started_total",
			Help: "Total number of quote sessions started.",
		}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mvz_quote_sessions_active",
			Help: "Number of quote sessions held in memory.",
		}),
		SessionsEvictedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mvz_quote_sessions_evicted_total",
			Help: "Total number of idle quote sessions evicted.",
		}),
		ItemsAddedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mvz_quote_items_added_total",
			Help: "Total number of line items added, by item type.",
		}, []string{"type"}),
		StepTransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mvz_quote_step_transitions_total",
			Help: "Total number of step navigation attempts, by target step and outcome.",
		}, []string{"to", "outcome"}),
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mvz_quote_submissions_total",
			Help: "Total number of quote submissions, by result.",
		}, []string{"result"}),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mvz_quote_export_duration_seconds",
			Help:    "Time to produce a quote document, including the export delay.",
			Buckets: exportDurationBuckets,
		}),
		SnapshotWritesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mvz_snapshot_writes_total",
			Help: "Total number of contact snapshot writes, by operation and result.",
		}, []string{"op", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SessionsStartedTotal,
		m.SessionsActive,
		m.SessionsEvictedTotal,
		m.ItemsAddedTotal,
		m.StepTransitionsTotal,
		m.SubmissionsTotal,
		m.ExportDuration,
		m.SnapshotWritesTotal,
	)

	return m
}

// NewNopMetrics returns instruments registered on a private registry, for
// tests and for running with metrics disabled.
func NewNopMetrics() *Metrics {
	return InitMetrics(prometheus.NewRegistry())
}

func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) RecordSessionStarted() {
	m.SessionsStartedTotal.Inc()
	m.SessionsActive.Inc()
}

// RecordSessionClosed counts a session leaving memory; evicted marks idle
// expiry as opposed to an explicit discard.
func (m *Metrics) RecordSessionClosed(evicted bool) {
	m.SessionsActive.Dec()
	if evicted {
		m.SessionsEvictedTotal.Inc()
	}
}

func (m *Metrics) RecordItemAdded(itemType string) {
	m.ItemsAddedTotal.WithLabelValues(itemType).Inc()
}

func (m *Metrics) RecordStepTransition(to string, allowed bool) {
	outcome := "allowed"
	if !allowed {
		outcome = "blocked"
	}
	m.StepTransitionsTotal.WithLabelValues(to, outcome).Inc()
}

func (m *Metrics) RecordSubmission(result string) {
	m.SubmissionsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordExportDuration(d time.Duration) {
	m.ExportDuration.Observe(d.Seconds())
}

func (m *Metrics) RecordSnapshotWrite(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.SnapshotWritesTotal.WithLabelValues(op, result).Inc()
}

// Middleware records request metrics labelled with gin's route pattern so
// session ids do not explode label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.RecordHTTPRequest(c.Request.Method, routeOf(c), c.Writer.Status(), time.Since(start))
	}
}

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HandlerFor serves the metrics gathered by g.
func HandlerFor(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
