// Package metrics exposes Prometheus instrumentation for the storefront on a
// dedicated registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics holds the storefront collectors. It satisfies storefront.Observer.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	viewRenders      *prometheus.CounterVec
	routeMisses      prometheus.Counter
	routesRegistered prometheus.Gauge
	panicsRecovered  prometheus.Counter
}

// New creates a Metrics instance backed by its own registry, including the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by method and status code",
			},
			[]string{"method", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "code"},
		),
		viewRenders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "view_renders_total",
				Help:      "Total number of views rendered by view name",
			},
			[]string{"view"},
		),
		routeMisses: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "route_misses_total",
				Help:      "Total number of requests that matched no route",
			},
		),
		routesRegistered: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "routes_registered",
				Help:      "Number of distinct routes in the route table",
			},
		),
		panicsRecovered: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "panics_recovered_total",
				Help:      "Total number of handler panics recovered",
			},
		),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and latency for every request.
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return promhttp.InstrumentHandlerCounter(m.requestsTotal,
			promhttp.InstrumentHandlerDuration(m.requestDuration, next),
		)
	}
}

// ViewRendered counts a rendered view.
func (m *Metrics) ViewRendered(view string) {
	m.viewRenders.WithLabelValues(view).Inc()
}

// RouteMissed counts a request that matched no route.
func (m *Metrics) RouteMissed() {
	m.routeMisses.Inc()
}

// PanicRecovered counts a recovered handler panic.
func (m *Metrics) PanicRecovered() {
	m.panicsRecovered.Inc()
}

// SetRoutes records the size of the route table.
func (m *Metrics) SetRoutes(n int) {
	m.routesRegistered.Set(float64(n))
}
