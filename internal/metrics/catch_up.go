package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catchUpAllocateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catch_up",
		Name:      "allocate_total",
		Help:      "Count of gap allocation runs.",
	}, []string{"network", "status"})

	catchUpAllocateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "catch_up",
		Name:      "allocate_duration_seconds",
		Help:      "Duration of gap allocation runs.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"network", "status"})

	catchUpBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "catch_up",
		Name:      "block_total",
		Help:      "Count of backfilled block fetches.",
	}, []string{"network", "status"})

	catchUpBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "catch_up",
		Name:      "block_duration_seconds",
		Help:      "Duration of fetching and storing one backfilled block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	catchUpPendingBuckets = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "catch_up",
		Name:      "pending_buckets",
		Help:      "Number of buckets still waiting to be backfilled.",
	}, []string{"network"})

	catchUpPendingHeights = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "catch_up",
		Name:      "pending_heights",
		Help:      "Number of heights still waiting to be backfilled.",
	}, []string{"network"})
)

// CatchUp tracks metrics for the catch-up engine.
type CatchUp struct {
	network model.Network
}

// NewCatchUp constructs a CatchUp metrics collector.
func NewCatchUp(network model.Network) *CatchUp {
	return &CatchUp{network: network}
}

// ObserveAllocate records a gap allocation run.
func (m CatchUp) ObserveAllocate(err error, started time.Time) {
	s := status(err)
	n := networkLabel(m.network)
	catchUpAllocateTotal.WithLabelValues(n, s).Inc()
	catchUpAllocateDuration.WithLabelValues(n, s).Observe(time.Since(started).Seconds())
}

// ObserveBlock records one backfilled height.
func (m CatchUp) ObserveBlock(err error, started time.Time) {
	s := status(err)
	n := networkLabel(m.network)
	catchUpBlockTotal.WithLabelValues(n, s).Inc()
	catchUpBlockDuration.WithLabelValues(n, s).Observe(time.Since(started).Seconds())
}

// SetPending publishes the remaining backlog.
func (m CatchUp) SetPending(buckets int, heights int64) {
	n := networkLabel(m.network)
	catchUpPendingBuckets.WithLabelValues(n).Set(float64(buckets))
	catchUpPendingHeights.WithLabelValues(n).Set(float64(heights))
}
