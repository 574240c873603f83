package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncForwardTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "forward_sync_total",
		Help:      "Count of forward sync passes.",
	}, []string{"network", "status"})
	syncForwardDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "forward_sync_duration_seconds",
		Help:      "Duration of forward sync passes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	syncForwardEvents = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "forward_sync_events",
		Help:      "Number of bid events merged per forward sync pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	syncBackfillTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "backfill_total",
		Help:      "Count of backfill windows.",
	}, []string{"network", "status"})
	syncBackfillDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "backfill_duration_seconds",
		Help:      "Duration of backfill windows.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	syncBackfillEvents = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "backfill_events",
		Help:      "Number of bid events merged per backfill window.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	syncRepairsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "consistency_repairs_total",
		Help:      "Count of bid history rebuilds after a divergence.",
	}, []string{"network"})

	profileFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "profile_fetch_total",
		Help:      "Count of profile fetches.",
	}, []string{"network", "cache", "status"})
	profileFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "auctionsight7000",
		Subsystem: "sync_engine",
		Name:      "profile_fetch_duration_seconds",
		Help:      "Duration of profile fetches.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "cache", "status"})
)

// SyncEngine tracks metrics for the auction synchronization engine.
type SyncEngine struct {
	network string
}

// NewSyncEngine constructs a metrics collector for the sync engine.
func NewSyncEngine(network string) *SyncEngine {
	if network == "" {
		network = "unknown"
	}
	return &SyncEngine{network: network}
}

// ObserveForwardSync records one forward sync pass.
func (m SyncEngine) ObserveForwardSync(err error, events int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncForwardTotal.WithLabelValues(m.network, status).Inc()
	syncForwardDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	syncForwardEvents.WithLabelValues(m.network).Observe(float64(events))
}

// ObserveBackfill records one backfill window.
func (m SyncEngine) ObserveBackfill(err error, events int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncBackfillTotal.WithLabelValues(m.network, status).Inc()
	syncBackfillDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	syncBackfillEvents.WithLabelValues(m.network).Observe(float64(events))
}

// ObserveConsistencyRepair records one bid history rebuild.
func (m SyncEngine) ObserveConsistencyRepair() {
	syncRepairsTotal.WithLabelValues(m.network).Inc()
}

// ObserveProfileFetch records one profile fetch and whether the cache served
// it.
func (m SyncEngine) ObserveProfileFetch(err error, cacheHit bool, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	cache := "miss"
	if cacheHit {
		cache = "hit"
	}
	profileFetchTotal.WithLabelValues(m.network, cache, status).Inc()
	profileFetchDuration.WithLabelValues(m.network, cache, status).Observe(time.Since(started).Seconds())
}
