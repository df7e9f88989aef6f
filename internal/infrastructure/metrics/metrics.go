// Package metrics exposes Prometheus collectors for probes, cycles, quota
// decisions and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/domain/plan"
)

const namespace = "toolbox"

// Metrics holds all Prometheus collectors
type Metrics struct {
	registry *prometheus.Registry

	ProbesTotal        *prometheus.CounterVec
	ProbeLatency       prometheus.Histogram
	CycleDuration      prometheus.Histogram
	CycleSitesChecked  prometheus.Gauge
	CheckResultsPruned prometheus.Counter

	QuotaDecisionsTotal *prometheus.CounterVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		ProbesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uptime_probes_total",
				Help:      "Total number of uptime probes by outcome",
			},
			[]string{"outcome"},
		),
		ProbeLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "uptime_probe_latency_seconds",
				Help:      "Wall-clock latency of uptime probes",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
		CycleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "uptime_cycle_duration_seconds",
				Help:      "Duration of a full probe cycle",
				Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
			},
		),
		CycleSitesChecked: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "uptime_cycle_sites_checked",
				Help:      "Number of sites probed by the last cycle",
			},
		),
		CheckResultsPruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uptime_check_results_pruned_total",
				Help:      "Check results removed by retention",
			},
		),
		QuotaDecisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quota_decisions_total",
				Help:      "Quota evaluations by resource kind and result",
			},
			[]string{"kind", "result"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.ProbesTotal,
		m.ProbeLatency,
		m.CycleDuration,
		m.CycleSitesChecked,
		m.CheckResultsPruned,
		m.QuotaDecisionsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordProbe counts one probe outcome and its latency.
func (m *Metrics) RecordProbe(outcome monitor.Outcome) {
	label := "down"
	if outcome.IsUp {
		label = "up"
	}
	m.ProbesTotal.WithLabelValues(label).Inc()
	m.ProbeLatency.Observe(float64(outcome.LatencyMs) / 1000)
}

// RecordCycle records one completed probe cycle.
func (m *Metrics) RecordCycle(duration time.Duration, checked int, pruned int64) {
	m.CycleDuration.Observe(duration.Seconds())
	m.CycleSitesChecked.Set(float64(checked))
	if pruned > 0 {
		m.CheckResultsPruned.Add(float64(pruned))
	}
}

// RecordQuotaDecision counts one quota evaluation.
func (m *Metrics) RecordQuotaDecision(kind plan.ResourceKind, allowed bool) {
	result := "denied"
	if allowed {
		result = "allowed"
	}
	m.QuotaDecisionsTotal.WithLabelValues(kind.String(), result).Inc()
}

// Middleware instruments gin requests. The route template is used as label
// so short codes do not explode cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
