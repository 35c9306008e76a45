package ingester

import "time"

const (
	defaultWorkerCount = 4

	allocationChunkSize int64 = 100_000
	allocationDivider   int64 = 10

	catchUpStartTimeout = 1 * time.Minute
	catchUpRetryDelay   = 5 * time.Second

	headTickTimeout     = 5 * time.Minute
	headWaitInterval    = 10 * time.Second
	headRetryDelay      = 5 * time.Second
	unconfirmedSeenSize = 10_000
)
