package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
)

const insertBlockQuery = `
INSERT INTO nem_blocks (
	network,
	number,
	hash,
	nem_timestamp,
	timestamp,
	type,
	version,
	signature,
	signer,
	prev_block_hash,
	tx_hashes
) VALUES`

const insertTransactionsQuery = `
INSERT INTO nem_transactions (
	network,
	hash,
	block_number,
	nem_timestamp,
	timestamp,
	type,
	version,
	amount,
	fee,
	sender,
	recipient,
	signer,
	cosignatories,
	inner_hash,
	payload
) VALUES`

// SaveBlock upserts the block and its transactions. Transactions are written first so
// a stored block row implies its transactions are stored too.
func (r *Repository) SaveBlock(ctx context.Context, b model.InsertBlock) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_block", r.network, err, start)
	}()

	if err = r.insertTransactions(ctx, b.Txs); err != nil {
		return err
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockQuery)
	if err != nil {
		return fmt.Errorf("prepare block batch: %w", err)
	}

	block := b.Block
	if err = batch.Append(
		string(r.network),
		block.Number,
		block.Hash,
		block.NemTimestamp,
		block.Timestamp,
		block.Type,
		block.Version,
		block.Signature,
		block.Signer,
		block.PrevBlockHash,
		block.TxHashes,
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append block: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block %d: %w", block.Number, err)
	}
	return nil
}

// SaveUnconfirmedTx stores a pending transaction.
func (r *Repository) SaveUnconfirmedTx(ctx context.Context, tx model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_unconfirmed_tx", r.network, err, start)
	}()

	tx.BlockNumber = model.UnconfirmedBlockNumber
	return r.insertTransactions(ctx, []model.Transaction{tx})
}

func (r *Repository) insertTransactions(ctx context.Context, txs []model.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		payload, err := json.Marshal(tx)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("marshal transaction %s: %w", tx.Hash, err)
		}
		cosignatories := tx.Cosignatories
		if cosignatories == nil {
			cosignatories = []string{}
		}
		if err := batch.Append(
			string(r.network),
			tx.Hash,
			tx.BlockNumber,
			tx.NemTimestamp,
			tx.Timestamp,
			tx.Type,
			tx.Version,
			tx.Amount,
			tx.Fee,
			tx.Sender,
			tx.Recipient,
			tx.Signer,
			cosignatories,
			tx.InnerHash,
			string(payload),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction %s: %w", tx.Hash, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
