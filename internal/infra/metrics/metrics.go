// Package metrics exposes compliance scoring activity to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"acp/config"
	"acp/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Metrics owns a dedicated registry so tests and multiple instances do not
// collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	reports        *prometheus.CounterVec
	productsScored prometheus.Counter
	productScore   prometheus.Histogram
	reportDuration prometheus.Histogram

	eventsReceived *prometheus.CounterVec
	regressions    prometheus.Counter
}

// New registers the compliance collectors under the configured namespace.
func New(cfg *config.Config) *Metrics {
	namespace := "acp"
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "compliance",
			Name:      "reports_total",
			Help:      "Compliance reports generated, by source.",
		}, []string{"source"}),
		productsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "compliance",
			Name:      "products_scored_total",
			Help:      "Products scored across all reports and analyses.",
		}),
		productScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "compliance",
			Name:      "product_score",
			Help:      "Distribution of per-product compliance scores.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
		reportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "compliance",
			Name:      "report_duration_seconds",
			Help:      "Time spent generating a compliance report.",
			Buckets:   prometheus.DefBuckets,
		}),
		eventsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "compliance",
			Name:      "report_events_received_total",
			Help:      "Report events consumed by the worker, by source.",
		}, []string{"source"}),
		regressions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "compliance",
			Name:      "score_regressions_total",
			Help:      "Report events whose overall score dropped past the regression threshold.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reports,
		m.productsScored,
		m.productScore,
		m.reportDuration,
		m.eventsReceived,
		m.regressions,
	)

	return m
}

// ObserveReport implements service.ComplianceMetrics.
func (m *Metrics) ObserveReport(source string, productScores []int, duration time.Duration) {
	m.reports.WithLabelValues(source).Inc()
	m.reportDuration.Observe(duration.Seconds())
	for _, score := range productScores {
		m.ObserveProduct(score)
	}
}

// ObserveProduct implements service.ComplianceMetrics.
func (m *Metrics) ObserveProduct(score int) {
	m.productsScored.Inc()
	m.productScore.Observe(float64(score))
}

// ObserveReportEvent implements service.EventMetrics.
func (m *Metrics) ObserveReportEvent(source string, regressed bool) {
	m.eventsReceived.WithLabelValues(source).Inc()
	if regressed {
		m.regressions.Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Module provides *Metrics and binds it as service.ComplianceMetrics and
// service.EventMetrics.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		func(m *Metrics) service.ComplianceMetrics { return m },
		func(m *Metrics) service.EventMetrics { return m },
	),
)
