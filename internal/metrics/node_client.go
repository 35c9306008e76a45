package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "requests_total",
		Help:      "Count of NIS HTTP requests.",
	}, []string{"method", "network", "status"})

	nodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of NIS HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "network", "status"})

	nodeFeedMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "feed_messages_total",
		Help:      "Count of STOMP messages received from the websocket feed.",
	}, []string{"destination", "network"})

	nodeFeedDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "feed_dropped_total",
		Help:      "Count of feed messages dropped because the consumer fell behind.",
	}, []string{"destination", "network"})

	nodeFeedReconnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "feed_reconnects_total",
		Help:      "Count of websocket feed (re)connections.",
	}, []string{"network", "status"})
)

// NodeClient tracks metrics for the upstream node client and its push feed.
type NodeClient struct {
	network model.Network
}

// NewNodeClient constructs a NodeClient metrics collector.
func NewNodeClient(network model.Network) *NodeClient {
	return &NodeClient{network: network}
}

// Observe records a request outcome and duration.
func (m NodeClient) Observe(method string, err error, started time.Time) {
	s := status(err)
	n := networkLabel(m.network)
	nodeRequestsTotal.WithLabelValues(method, n, s).Inc()
	nodeRequestDuration.WithLabelValues(method, n, s).Observe(time.Since(started).Seconds())
}

// ObserveFeedMessage counts a message delivered on destination.
func (m NodeClient) ObserveFeedMessage(destination string) {
	nodeFeedMessagesTotal.WithLabelValues(destination, networkLabel(m.network)).Inc()
}

// ObserveFeedConnect counts a feed connection attempt.
func (m NodeClient) ObserveFeedConnect(err error) {
	s := "success"
	if err != nil {
		s = "error"
	}
	nodeFeedReconnectsTotal.WithLabelValues(networkLabel(m.network), s).Inc()
}

// ObserveFeedDropped counts a feed message dropped on destination.
func (m NodeClient) ObserveFeedDropped(destination string) {
	nodeFeedDroppedTotal.WithLabelValues(destination, networkLabel(m.network)).Inc()
}
