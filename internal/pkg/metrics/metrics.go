// Package metrics exposes Prometheus instrumentation for the HTTP API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics holds the request-level instruments for one service,
// plus the business counters worth alerting on.
type ServerMetrics struct {
	Requests     *prometheus.CounterVec
	LatencyMS    *prometheus.HistogramVec
	OrdersPlaced prometheus.Counter
}

// NewServerMetrics registers and returns the server instruments.
// Call once per process; duplicate registration panics.
func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cctexpress",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cctexpress",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cctexpress",
		Subsystem: service,
		Name:      "orders_placed_total",
		Help:      "Total number of successfully placed orders.",
	})

	prometheus.MustRegister(requests, latency, ordersPlaced)
	return &ServerMetrics{Requests: requests, LatencyMS: latency, OrdersPlaced: ordersPlaced}
}

// Handler serves the metrics scrape endpoint.
func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.Handler()
}
