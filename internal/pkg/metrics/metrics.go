// Package metrics exposes the Prometheus collectors of the order service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketplace"

// Metrics groups the HTTP and order lifecycle collectors.
type Metrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	ordersCreated       prometheus.Counter
	ordersDecided       *prometheus.CounterVec
	notificationsFailed *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers all collectors on reg. Pass prometheus.NewRegistry() in tests to
// keep them isolated from the default registry.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders created from cart submissions.",
		}),
		ordersDecided: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_decided_total",
			Help:      "Orders confirmed or denied by sellers.",
		}, []string{"decision"}),
		notificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "Notifications the sink did not accept.",
		}, []string{"kind"}),
		gatherer: reg,
	}

	reg.MustRegister(m.Requests, m.LatencyMS, m.ordersCreated, m.ordersDecided, m.notificationsFailed)
	return m
}

func (m *Metrics) OrdersCreated(n int) {
	m.ordersCreated.Add(float64(n))
}

func (m *Metrics) OrderDecided(decision string) {
	m.ordersDecided.WithLabelValues(decision).Inc()
}

func (m *Metrics) NotificationFailed(kind string) {
	m.notificationsFailed.WithLabelValues(kind).Inc()
}

// Handler serves the registry m was built with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
