// Package metrics provides Prometheus metrics for observability.
//
// This package exposes metrics for the wire codec and the client:
//   - Frames encoded/decoded counters and byte totals
//   - Decode failure counters broken down by failure kind
//   - Active connection gauge
//   - Exchange counters by API name and status
//   - Exchange latency histogram
//
// Metrics are exposed via a dedicated HTTP server on /metrics in
// Prometheus format.
//
// Usage:
//
//	codecMetrics := metrics.NewCodecMetrics()
//	exchangeMetrics := metrics.NewExchangeMetrics()
//
//	conn, err := client.Dial(ctx, client.Config{Metrics: exchangeMetrics})
//
//	metricsServer := metrics.NewServer(":9090")
//	metricsServer.Start()
package metrics
