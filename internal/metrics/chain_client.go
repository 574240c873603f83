// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auctionsight7000",
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of provider RPC operations.",
	}, []string{"operation", "network", "status"})
	chainClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "auctionsight7000",
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of provider RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ChainClient tracks metrics for RPC calls to the EVM provider.
type ChainClient struct {
	network string
}

// NewChainClient constructs a metrics collector for provider calls.
func NewChainClient(network string) *ChainClient {
	if network == "" {
		network = "unknown"
	}
	return &ChainClient{network: network}
}

// Observe records a single provider call outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	chainClientRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	chainClientRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
