package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const activeAccountsQuery = `
SELECT address
FROM nem_accounts FINAL
WHERE network = ? AND active = 1 AND has(?, address)`

// ActiveAccounts returns the subset of addresses registered as active.
func (r *Repository) ActiveAccounts(ctx context.Context, addresses []string) (active []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("active_accounts", r.network, err, start)
	}()

	if len(addresses) == 0 {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, activeAccountsQuery, string(r.network), addresses)
	if err != nil {
		return nil, fmt.Errorf("query active accounts: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var address string
		if err = rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		active = append(active, address)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return active, nil
}
