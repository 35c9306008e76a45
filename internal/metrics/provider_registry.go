package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerSelectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider_registry",
		Name:      "select_total",
		Help:      "Count of provider selection rounds.",
	}, []string{"network", "status"})

	providerSelectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "provider_registry",
		Name:      "select_duration_seconds",
		Help:      "Duration of provider selection rounds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	providerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "provider_registry",
		Name:      "height",
		Help:      "Last height reported by each provider, -1 when it did not answer.",
	}, []string{"network", "provider"})

	providerChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider_registry",
		Name:      "changes_total",
		Help:      "Count of selected provider changes.",
	}, []string{"network"})

	providerDisabledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "provider_registry",
		Name:      "disabled_total",
		Help:      "Count of providers put on cooldown.",
	}, []string{"network", "provider"})
)

// ProviderRegistry tracks metrics for provider selection.
type ProviderRegistry struct {
	network model.Network
}

// NewProviderRegistry constructs a ProviderRegistry metrics collector.
func NewProviderRegistry(network model.Network) *ProviderRegistry {
	return &ProviderRegistry{network: network}
}

// ObserveSelect records a selection round.
func (m ProviderRegistry) ObserveSelect(err error, started time.Time) {
	s := status(err)
	n := networkLabel(m.network)
	providerSelectTotal.WithLabelValues(n, s).Inc()
	providerSelectDuration.WithLabelValues(n, s).Observe(time.Since(started).Seconds())
}

// SetHeight stores the height a provider reported.
func (m ProviderRegistry) SetHeight(provider string, height int64) {
	providerHeight.WithLabelValues(networkLabel(m.network), provider).Set(float64(height))
}

// ObserveChange counts a change of the selected provider.
func (m ProviderRegistry) ObserveChange() {
	providerChangesTotal.WithLabelValues(networkLabel(m.network)).Inc()
}

// ObserveDisable counts a provider cooldown.
func (m ProviderRegistry) ObserveDisable(provider string) {
	providerDisabledTotal.WithLabelValues(networkLabel(m.network), provider).Inc()
}
