package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/pkg/safe"
)

const countBlocksInRangeQuery = `
SELECT count()
FROM nem_blocks FINAL
WHERE network = ? AND number BETWEEN ? AND ?`

// CountBlocksInRange counts stored blocks with min <= number <= max.
func (r *Repository) CountBlocksInRange(ctx context.Context, minNumber, maxNumber int64) (count int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("count_blocks_in_range", r.network, err, start)
	}()

	rows, err := r.conn.Query(ctx, countBlocksInRangeQuery, string(r.network), minNumber, maxNumber)
	if err != nil {
		return 0, fmt.Errorf("query blocks count: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("iterate blocks count: %w", err)
		}
		return 0, errors.New("blocks count not returned")
	}

	var raw uint64
	if err = rows.Scan(&raw); err != nil {
		return 0, fmt.Errorf("scan blocks count: %w", err)
	}
	if count, err = safe.Int64(raw); err != nil {
		return 0, fmt.Errorf("blocks count: %w", err)
	}
	return count, nil
}
