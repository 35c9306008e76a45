package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	electionRoundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "election",
		Name:      "rounds_total",
		Help:      "Count of election rounds by result.",
	}, []string{"service", "result"})

	electionIsLeader = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "election",
		Name:      "is_leader",
		Help:      "1 when this instance is the leader.",
	}, []string{"service"})
)

// Election tracks metrics for leader election.
type Election struct {
	service string
}

// NewElection constructs an Election metrics collector.
func NewElection(service string) *Election {
	if service == "" {
		service = "unknown"
	}
	return &Election{service: service}
}

// ObserveRound records a round that ended with result ("answered", "proclaimed" or "error").
func (m Election) ObserveRound(result string) {
	electionRoundsTotal.WithLabelValues(m.service, result).Inc()
}

// SetLeader publishes the current leadership flag.
func (m Election) SetLeader(leader bool) {
	v := 0.0
	if leader {
		v = 1
	}
	electionIsLeader.WithLabelValues(m.service).Set(v)
}
