package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	publisherEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "publisher",
		Name:      "events_total",
		Help:      "Count of events published on the bus.",
	}, []string{"service", "event", "status"})

	publisherFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "publisher",
		Name:      "flush_duration_seconds",
		Help:      "Duration of publishing a batch of events.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "status"})

	publisherFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "publisher",
		Name:      "flush_size",
		Help:      "Number of events per published batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"service"})
)

// Publisher tracks metrics for event publishing.
type Publisher struct {
	service string
}

// NewPublisher constructs a Publisher metrics collector.
func NewPublisher(service string) *Publisher {
	if service == "" {
		service = "unknown"
	}
	return &Publisher{service: service}
}

// ObserveEvent counts one published event of kind event.
func (m Publisher) ObserveEvent(event string, err error) {
	s := "success"
	if err != nil {
		s = "error"
	}
	publisherEventsTotal.WithLabelValues(m.service, event, s).Inc()
}

// ObserveFlush records a batch flush.
func (m Publisher) ObserveFlush(err error, size int, started time.Time) {
	s := "success"
	if err != nil {
		s = "error"
	}
	publisherFlushDuration.WithLabelValues(m.service, s).Observe(time.Since(started).Seconds())
	publisherFlushSize.WithLabelValues(m.service).Observe(float64(size))
}
