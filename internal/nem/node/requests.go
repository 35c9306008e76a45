package node

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
	"go.uber.org/zap"
)

// Requests routes upstream calls to the selected provider and fails over on connection errors.
type Requests struct {
	registry Registry
	client   BlockFetcher
	logger   *zap.Logger
}

// NewRequests constructs a Requests façade.
func NewRequests(registry Registry, client BlockFetcher, logger *zap.Logger) *Requests {
	return &Requests{
		registry: registry,
		client:   client,
		logger:   logger.Named("nodeRequests"),
	}
}

// Height re-runs provider selection and returns the selected provider's height.
func (r *Requests) Height(ctx context.Context) (int64, error) {
	p, err := r.registry.SelectProvider(ctx)
	if err != nil {
		return 0, err
	}
	return p.Height, nil
}

// BlockByNumber fetches the block at height. A nil block means the upstream does not have it yet.
func (r *Requests) BlockByNumber(ctx context.Context, height int64) (*model.RawBlock, error) {
	var lastErr error
	for attempt := 0; attempt <= r.registry.Size(); attempt++ {
		p, err := r.registry.Provider(ctx)
		if err != nil {
			return nil, err
		}

		block, err := r.client.BlockAt(ctx, p.HTTP, height)
		if err == nil {
			return block, nil
		}
		if !syncerr.Is(err, syncerr.KindUpstreamUnreachable) {
			return nil, err
		}

		lastErr = err
		r.logger.Warn("provider unreachable, failing over",
			zap.String("provider", p.Key()),
			zap.Int64("height", height),
			zap.Error(err),
		)
		r.registry.DisableProvider(p)
	}
	return nil, lastErr
}
