package publisher

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/provider"
	"go.uber.org/zap"
)

// Announcer publishes the selected provider key on <svc>_provider whenever it
// changes and whenever a peer asks on <svc>_what_provider.
type Announcer struct {
	bus     Bus
	source  ProviderSource
	logger  *zap.Logger
	service string
	changed chan provider.Provider
}

// NewAnnouncer builds an Announcer. Register ProviderChanged with the registry.
func NewAnnouncer(bus Bus, source ProviderSource, service string, logger *zap.Logger) *Announcer {
	return &Announcer{
		bus:     bus,
		source:  source,
		logger:  logger,
		service: service,
		changed: make(chan provider.Provider, 1),
	}
}

// ProviderChanged queues p for announcement. Only the latest change is kept.
func (a *Announcer) ProviderChanged(p provider.Provider) {
	for {
		select {
		case a.changed <- p:
			return
		default:
		}
		select {
		case <-a.changed:
		default:
		}
	}
}

// Run answers provider requests and announces changes until ctx is canceled.
func (a *Announcer) Run(ctx context.Context) error {
	requestKey := a.service + "_what_provider"
	requests, err := a.bus.Subscribe(ctx, Exchange, requestKey, requestKey)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", requestKey, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p := <-a.changed:
			a.announce(ctx, p)
		case _, ok := <-requests:
			if !ok {
				return fmt.Errorf("subscription %s closed", requestKey)
			}
			p, ok := a.source.Current()
			if !ok {
				a.logger.Debug("provider requested before selection")
				continue
			}
			a.announce(ctx, p)
		}
	}
}

func (a *Announcer) announce(ctx context.Context, p provider.Provider) {
	if err := a.bus.Publish(ctx, Exchange, a.service+"_provider", []byte(p.Key())); err != nil {
		a.logger.Warn("announce provider failed", zap.String("provider", p.Key()), zap.Error(err))
	}
}
