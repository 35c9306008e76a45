package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
)

const blockColumns = `number, hash, nem_timestamp, timestamp, type, version, signature, signer, prev_block_hash, tx_hashes`

const findBlocksByHashQuery = `
SELECT ` + blockColumns + `
FROM nem_blocks FINAL
WHERE network = ? AND has(?, hash)
ORDER BY number DESC`

const findLastBlocksQuery = `
SELECT ` + blockColumns + `
FROM nem_blocks FINAL
WHERE network = ?
ORDER BY number DESC
LIMIT ?`

// FindBlocksByHash returns stored blocks whose hash is in hashes.
func (r *Repository) FindBlocksByHash(ctx context.Context, hashes []string) (blocks []model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("find_blocks_by_hash", r.network, err, start)
	}()

	if len(hashes) == 0 {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, findBlocksByHashQuery, string(r.network), hashes)
	if err != nil {
		return nil, fmt.Errorf("query blocks by hash: %w", err)
	}
	defer closeRows(rows, &err)

	return r.scanBlocks(rows)
}

// FindLastBlocks returns up to limit blocks, highest first.
func (r *Repository) FindLastBlocks(ctx context.Context, limit int) (blocks []model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("find_last_blocks", r.network, err, start)
	}()

	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, findLastBlocksQuery, string(r.network), limit)
	if err != nil {
		return nil, fmt.Errorf("query last blocks: %w", err)
	}
	defer closeRows(rows, &err)

	return r.scanBlocks(rows)
}

func (r *Repository) scanBlocks(rows Rows) ([]model.Block, error) {
	var blocks []model.Block
	for rows.Next() {
		b := model.Block{Network: r.network}
		if err := rows.Scan(
			&b.Number,
			&b.Hash,
			&b.NemTimestamp,
			&b.Timestamp,
			&b.Type,
			&b.Version,
			&b.Signature,
			&b.Signer,
			&b.PrevBlockHash,
			&b.TxHashes,
		); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}
	return blocks, nil
}
