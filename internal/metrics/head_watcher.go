package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headWatcherTickTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "head_watcher",
		Name:      "tick_total",
		Help:      "Count of head-watching iterations by outcome.",
	}, []string{"network", "status"})

	headWatcherTickDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "head_watcher",
		Name:      "tick_duration_seconds",
		Help:      "Duration of head-watching iterations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	headWatcherRollbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "head_watcher",
		Name:      "rollbacks_total",
		Help:      "Count of blocks removed by rollback.",
	}, []string{"network"})

	headWatcherCursor = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "head_watcher",
		Name:      "cursor_height",
		Help:      "Height of the last verified block.",
	}, []string{"network"})

	headWatcherUnconfirmedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "head_watcher",
		Name:      "unconfirmed_total",
		Help:      "Count of unconfirmed transactions relayed from the push feed.",
	}, []string{"network", "status"})
)

// HeadWatcher tracks metrics for the head-watching engine.
type HeadWatcher struct {
	network model.Network
}

// NewHeadWatcher constructs a HeadWatcher metrics collector.
func NewHeadWatcher(network model.Network) *HeadWatcher {
	return &HeadWatcher{network: network}
}

// ObserveTick records one loop iteration.
func (m HeadWatcher) ObserveTick(err error, started time.Time) {
	s := status(err)
	n := networkLabel(m.network)
	headWatcherTickTotal.WithLabelValues(n, s).Inc()
	headWatcherTickDuration.WithLabelValues(n, s).Observe(time.Since(started).Seconds())
}

// ObserveRollback counts one removed block.
func (m HeadWatcher) ObserveRollback() {
	headWatcherRollbacksTotal.WithLabelValues(networkLabel(m.network)).Inc()
}

// SetCursor publishes the verified head height.
func (m HeadWatcher) SetCursor(height int64) {
	headWatcherCursor.WithLabelValues(networkLabel(m.network)).Set(float64(height))
}

// ObserveUnconfirmed records a relayed pending transaction.
func (m HeadWatcher) ObserveUnconfirmed(err error) {
	headWatcherUnconfirmedTotal.WithLabelValues(networkLabel(m.network), status(err)).Inc()
}
