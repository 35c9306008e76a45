package ingester

import (
	"context"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
	"go.uber.org/zap"
)

// blockWriter serializes ledger mutations shared by catch-up and head watching.
type blockWriter struct {
	repo   LedgerRepository
	logger *zap.Logger
	mu     sync.Mutex
}

// NewBlockWriter returns the writer to share between catch-up and head watching.
func NewBlockWriter(repo LedgerRepository, logger *zap.Logger) BlockWriter {
	return &blockWriter{repo: repo, logger: logger.Named("blockWriter")}
}

// WriteBlock stores b, confirms it can be read back by hash and drops its
// transactions from the unconfirmed pool.
func (w *blockWriter) WriteBlock(ctx context.Context, b model.InsertBlock) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.repo.SaveBlock(ctx, b); err != nil {
		return fmt.Errorf("save block %d: %w", b.Block.Number, err)
	}

	stored, err := w.repo.FindBlocksByHash(ctx, []string{b.Block.Hash})
	if err != nil {
		return fmt.Errorf("verify block %d: %w", b.Block.Number, err)
	}
	if !containsBlock(stored, b.Block.Number) {
		w.logger.Warn("block missing after save, removing partial write",
			zap.Int64("number", b.Block.Number),
			zap.String("hash", b.Block.Hash),
		)
		if err := w.discard(ctx, b.Block.Number); err != nil {
			return err
		}
		return syncerr.ChainDivergence("write block", fmt.Errorf("block %d not readable after save", b.Block.Number))
	}

	if len(b.Txs) == 0 {
		return nil
	}
	if err := w.repo.PurgeConfirmedFromUnconfirmedPool(ctx, b.TxHashes()); err != nil {
		return fmt.Errorf("purge unconfirmed for block %d: %w", b.Block.Number, err)
	}
	return nil
}

// Rollback removes the block at number and every transaction at or above it.
func (w *blockWriter) Rollback(ctx context.Context, number int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rollback(ctx, number)
}

func (w *blockWriter) rollback(ctx context.Context, number int64) error {
	if err := w.repo.RemoveBlock(ctx, number); err != nil {
		return fmt.Errorf("remove block %d: %w", number, err)
	}
	if err := w.repo.RemoveTxsFromHeight(ctx, number); err != nil {
		return fmt.Errorf("remove transactions from %d: %w", number, err)
	}
	return nil
}

// discard removes a single block and its own transactions. Blocks above it
// stay intact since catch-up writes in descending order.
func (w *blockWriter) discard(ctx context.Context, number int64) error {
	if err := w.repo.RemoveBlock(ctx, number); err != nil {
		return fmt.Errorf("remove block %d: %w", number, err)
	}
	if err := w.repo.RemoveTxsAtHeight(ctx, number); err != nil {
		return fmt.Errorf("remove transactions at %d: %w", number, err)
	}
	return nil
}

func containsBlock(blocks []model.Block, number int64) bool {
	for _, b := range blocks {
		if b.Number == number {
			return true
		}
	}
	return false
}
