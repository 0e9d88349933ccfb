package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the audit layer and shared caches.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry prometheus.Gatherer

	ActivitiesSaved    prometheus.Counter
	ActivitiesFailed   prometheus.Counter
	AuditSkipped       prometheus.Counter
	ExceptionsCaptured prometheus.Counter
	ErrorsReported     prometheus.Counter
	CacheLookups       *prometheus.CounterVec
}

// New creates and registers all collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		ActivitiesSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "audit_activities_saved_total",
			Help: "Activity records committed to storage",
		}),
		ActivitiesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "audit_activities_failed_total",
			Help: "Activity records that could not be persisted",
		}),
		AuditSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "audit_requests_skipped_total",
			Help: "Requests that did not qualify for an activity record",
		}),
		ExceptionsCaptured: factory.NewCounter(prometheus.CounterOpts{
			Name: "audit_exceptions_captured_total",
			Help: "Unhandled handler panics recorded for a known user",
		}),
		ErrorsReported: factory.NewCounter(prometheus.CounterOpts{
			Name: "audit_errors_reported_total",
			Help: "Errors handed to the error reporter",
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Cache facade lookups by result",
		}, []string{"result"}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ActivitySaved() {
	if m != nil {
		m.ActivitiesSaved.Inc()
	}
}

func (m *Metrics) ActivityFailed() {
	if m != nil {
		m.ActivitiesFailed.Inc()
	}
}

func (m *Metrics) Skipped() {
	if m != nil {
		m.AuditSkipped.Inc()
	}
}

func (m *Metrics) ExceptionCaptured() {
	if m != nil {
		m.ExceptionsCaptured.Inc()
	}
}

func (m *Metrics) ErrorReported() {
	if m != nil {
		m.ErrorsReported.Inc()
	}
}

func (m *Metrics) CacheHit() {
	if m != nil {
		m.CacheLookups.WithLabelValues("hit").Inc()
	}
}

func (m *Metrics) CacheMiss() {
	if m != nil {
		m.CacheLookups.WithLabelValues("miss").Inc()
	}
}
