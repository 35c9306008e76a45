package ingester

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// UnconfirmedRelay stores pending transactions pushed by the node and forwards
// them to the observer once per hash.
type UnconfirmedRelay struct {
	logger    *zap.Logger
	metrics   HeadWatcherMetrics
	repo      LedgerRepository
	converter BlockConverter
	observer  Observer
	seen      *lru.Cache[string, struct{}]
}

// NewUnconfirmedRelay builds an UnconfirmedRelay with dependencies.
func NewUnconfirmedRelay(
	repo LedgerRepository,
	converter BlockConverter,
	observer Observer,
	metrics HeadWatcherMetrics,
	network model.Network,
	logger *zap.Logger,
) (*UnconfirmedRelay, error) {
	if metrics == nil {
		return nil, errors.New("unconfirmed relay metrics is required")
	}
	if observer == nil {
		observer = NopObserver{}
	}
	seen, err := lru.New[string, struct{}](unconfirmedSeenSize)
	if err != nil {
		return nil, fmt.Errorf("create seen cache: %w", err)
	}

	return &UnconfirmedRelay{
		logger:    logger.With(zap.String("network", string(network))),
		metrics:   metrics,
		repo:      repo,
		converter: converter,
		observer:  observer,
		seen:      seen,
	}, nil
}

// Run consumes feed until it is closed or the context is canceled.
func (r *UnconfirmedRelay) Run(ctx context.Context, feed <-chan model.UnconfirmedTransaction) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, ok := <-feed:
			if !ok {
				return nil
			}
			if err := r.handle(ctx, u); err != nil {
				if syncerr.IsFatal(err) {
					r.logger.Error("unconfirmed relay aborted", zap.Error(err))
					return err
				}
				r.logger.Warn("unconfirmed transaction dropped", zap.Error(err))
			}
		}
	}
}

func (r *UnconfirmedRelay) handle(ctx context.Context, u model.UnconfirmedTransaction) (err error) {
	defer func() {
		r.metrics.ObserveUnconfirmed(err)
	}()

	tx, err := r.converter.Unconfirmed(u)
	if err != nil {
		return err
	}
	if u.DeclaredHash != "" && u.DeclaredHash != tx.Hash {
		r.logger.Warn("declared hash differs from computed hash",
			zap.String("declared", u.DeclaredHash),
			zap.String("computed", tx.Hash),
		)
	}
	if r.seen.Contains(tx.Hash) {
		return nil
	}

	if err := r.repo.SaveUnconfirmedTx(ctx, tx); err != nil {
		return fmt.Errorf("save unconfirmed %s: %w", tx.Hash, err)
	}
	r.seen.Add(tx.Hash, struct{}{})
	r.observer.OnTransaction(ctx, tx)
	return nil
}
