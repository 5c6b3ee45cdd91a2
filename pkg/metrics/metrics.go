// Package metrics provides prometheus collectors for use cases and upstream calls of plugin connections
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/manifold/pkg/domain"
)

// Collector records manifold metrics. A nil *Collector is valid and records nothing.
type Collector struct {
	useCases        *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	upstreamCalls   *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
	breakerState    *prometheus.GaugeVec
}

// NewCollector makes a collector registered with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		useCases: f.NewCounterVec(prometheus.CounterOpts{
			Name: "manifold_usecase_total",
			Help: "Use case invocations by operation and result",
		}, []string{"op", "result"}),
		useCaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "manifold_usecase_duration_seconds",
			Help:    "Use case duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		upstreamCalls: f.NewCounterVec(prometheus.CounterOpts{
			Name: "manifold_upstream_requests_total",
			Help: "Requests to external feed services by service type, call and result",
		}, []string{"service_type", "call", "result"}),
		upstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "manifold_upstream_latency_seconds",
			Help:    "Latency of requests to external feed services in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service_type", "call"}),
		breakerState: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "manifold_upstream_breaker_open",
			Help: "1 if the circuit breaker of an upstream connection is open",
		}, []string{"breaker"}),
	}
}

// Result maps an error to the result label, application errors use their code
func Result(err error) string {
	if err == nil {
		return "ok"
	}
	if code := domain.ErrorCode(err); code != "" {
		return string(code)
	}
	return "error"
}

// UseCase records one use case outcome
func (c *Collector) UseCase(op string, started time.Time, err error) {
	if c == nil {
		return
	}
	c.useCases.WithLabelValues(op, Result(err)).Inc()
	c.useCaseDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

// Upstream records one call to an external service
func (c *Collector) Upstream(serviceType, call string, started time.Time, err error) {
	if c == nil {
		return
	}
	c.upstreamCalls.WithLabelValues(serviceType, call, Result(err)).Inc()
	c.upstreamLatency.WithLabelValues(serviceType, call).Observe(time.Since(started).Seconds())
}

// BreakerOpen sets the open state of a named circuit breaker
func (c *Collector) BreakerOpen(name string, open bool) {
	if c == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	c.breakerState.WithLabelValues(name).Set(v)
}

// Handler returns the scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
