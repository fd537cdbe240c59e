package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values for ExchangesTotal.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// DefaultExchangeLatencyBuckets are latency buckets for request/response
// exchanges. Covers from fast local brokers to slow WAN round trips.
var DefaultExchangeLatencyBuckets = []float64{
	0.001, // 1ms
	0.005, // 5ms
	0.01,  // 10ms
	0.025, // 25ms
	0.05,  // 50ms
	0.1,   // 100ms
	0.25,  // 250ms
	0.5,   // 500ms
	1.0,   // 1s
	2.5,   // 2.5s
	5.0,   // 5s
	10.0,  // 10s
}

// ExchangeMetrics holds metrics related to client connections and
// request/response exchanges.
type ExchangeMetrics struct {
	// ActiveConnections tracks the current number of open broker connections.
	ActiveConnections prometheus.Gauge

	// ExchangesTotal tracks total exchanges by API name and status.
	// Labels: api (Produce, Fetch, Metadata, etc.), status (success, failure)
	ExchangesTotal *prometheus.CounterVec

	// ExchangeLatency tracks round-trip latency in seconds by API name.
	ExchangeLatency *prometheus.HistogramVec
}

// NewExchangeMetrics creates and registers exchange metrics.
// Uses promauto for automatic registration with the default registry.
func NewExchangeMetrics() *ExchangeMetrics {
	return &ExchangeMetrics{
		ActiveConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "kwire",
				Subsystem: "client",
				Name:      "active_connections",
				Help:      "Current number of open broker connections.",
			},
		),
		ExchangesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kwire",
				Subsystem: "client",
				Name:      "exchanges_total",
				Help:      "Total number of request/response exchanges, broken down by API and status.",
			},
			[]string{"api", "status"},
		),
		ExchangeLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "kwire",
				Subsystem: "client",
				Name:      "exchange_latency_seconds",
				Help:      "Round-trip exchange latency in seconds, broken down by API.",
				Buckets:   DefaultExchangeLatencyBuckets,
			},
			[]string{"api"},
		),
	}
}

// NewExchangeMetricsWithRegistry creates exchange metrics registered with a custom registry.
// Useful for testing to avoid conflicts with the default registry.
func NewExchangeMetricsWithRegistry(reg prometheus.Registerer) *ExchangeMetrics {
	activeConnections := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "kwire",
			Subsystem: "client",
			Name:      "active_connections",
			Help:      "Current number of open broker connections.",
		},
	)

	exchangesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kwire",
			Subsystem: "client",
			Name:      "exchanges_total",
			Help:      "Total number of request/response exchanges, broken down by API and status.",
		},
		[]string{"api", "status"},
	)

	exchangeLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kwire",
			Subsystem: "client",
			Name:      "exchange_latency_seconds",
			Help:      "Round-trip exchange latency in seconds, broken down by API.",
			Buckets:   DefaultExchangeLatencyBuckets,
		},
		[]string{"api"},
	)

	reg.MustRegister(activeConnections)
	reg.MustRegister(exchangesTotal)
	reg.MustRegister(exchangeLatency)

	return &ExchangeMetrics{
		ActiveConnections: activeConnections,
		ExchangesTotal:    exchangesTotal,
		ExchangeLatency:   exchangeLatency,
	}
}

// ConnectionOpened increments the active connections gauge.
func (m *ExchangeMetrics) ConnectionOpened() {
	m.ActiveConnections.Inc()
}

// ConnectionClosed decrements the active connections gauge.
func (m *ExchangeMetrics) ConnectionClosed() {
	m.ActiveConnections.Dec()
}

// RecordExchange records an exchange by API name.
// apiName is the protocol API name (e.g., "Produce", "Fetch", "Metadata").
// success indicates whether the exchange completed without error.
func (m *ExchangeMetrics) RecordExchange(apiName string, success bool, durationSeconds float64) {
	status := StatusFailure
	if success {
		status = StatusSuccess
	}
	m.ExchangesTotal.WithLabelValues(apiName, status).Inc()
	m.ExchangeLatency.WithLabelValues(apiName).Observe(durationSeconds)
}
