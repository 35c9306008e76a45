package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
)

const (
	removeBlockQuery         = `DELETE FROM nem_blocks WHERE network = ? AND number = ?`
	removeTxsFromHeightQuery = `DELETE FROM nem_transactions WHERE network = ? AND block_number >= ?`
	removeTxsAtHeightQuery   = `DELETE FROM nem_transactions WHERE network = ? AND block_number = ?`
	purgeConfirmedQuery      = `DELETE FROM nem_transactions WHERE network = ? AND block_number = ? AND has(?, hash)`
	removeUnconfirmedQuery   = `DELETE FROM nem_transactions WHERE network = ? AND block_number = ?`
)

// RemoveBlock deletes the block with the given number.
func (r *Repository) RemoveBlock(ctx context.Context, number int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("remove_block", r.network, err, start)
	}()

	if err = r.conn.Exec(ctx, removeBlockQuery, string(r.network), number); err != nil {
		return fmt.Errorf("remove block %d: %w", number, err)
	}
	return nil
}

// RemoveTxsFromHeight deletes confirmed transactions at or above number.
func (r *Repository) RemoveTxsFromHeight(ctx context.Context, number int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("remove_txs_from_height", r.network, err, start)
	}()

	if err = r.conn.Exec(ctx, removeTxsFromHeightQuery, string(r.network), number); err != nil {
		return fmt.Errorf("remove transactions from %d: %w", number, err)
	}
	return nil
}

// RemoveTxsAtHeight deletes the confirmed transactions of block number only.
func (r *Repository) RemoveTxsAtHeight(ctx context.Context, number int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("remove_txs_at_height", r.network, err, start)
	}()

	if err = r.conn.Exec(ctx, removeTxsAtHeightQuery, string(r.network), number); err != nil {
		return fmt.Errorf("remove transactions at %d: %w", number, err)
	}
	return nil
}

// PurgeConfirmedFromUnconfirmedPool deletes pending copies of the given transaction hashes.
func (r *Repository) PurgeConfirmedFromUnconfirmedPool(ctx context.Context, hashes []string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("purge_unconfirmed", r.network, err, start)
	}()

	if len(hashes) == 0 {
		return nil
	}
	if err = r.conn.Exec(ctx, purgeConfirmedQuery, string(r.network), model.UnconfirmedBlockNumber, hashes); err != nil {
		return fmt.Errorf("purge confirmed transactions: %w", err)
	}
	return nil
}

// RemoveUnconfirmedTxs clears the whole unconfirmed pool.
func (r *Repository) RemoveUnconfirmedTxs(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("remove_unconfirmed", r.network, err, start)
	}()

	if err = r.conn.Exec(ctx, removeUnconfirmedQuery, string(r.network), model.UnconfirmedBlockNumber); err != nil {
		return fmt.Errorf("remove unconfirmed transactions: %w", err)
	}
	return nil
}
