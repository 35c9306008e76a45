package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeRequests interface {
		Height(ctx context.Context) (int64, error)
		BlockByNumber(ctx context.Context, height int64) (*model.RawBlock, error)
	}
	LedgerRepository interface {
		CountBlocksInRange(ctx context.Context, minNumber, maxNumber int64) (int64, error)
		FindBlocksByHash(ctx context.Context, hashes []string) ([]model.Block, error)
		FindLastBlocks(ctx context.Context, limit int) ([]model.Block, error)
		SaveBlock(ctx context.Context, b model.InsertBlock) error
		RemoveBlock(ctx context.Context, number int64) error
		RemoveTxsFromHeight(ctx context.Context, number int64) error
		RemoveTxsAtHeight(ctx context.Context, number int64) error
		SaveUnconfirmedTx(ctx context.Context, tx model.Transaction) error
		PurgeConfirmedFromUnconfirmedPool(ctx context.Context, hashes []string) error
		RemoveUnconfirmedTxs(ctx context.Context) error
	}
	BlockConverter interface {
		Block(raw *model.RawBlock) (model.InsertBlock, error)
		Unconfirmed(u model.UnconfirmedTransaction) (model.Transaction, error)
	}
	BlockWriter interface {
		WriteBlock(ctx context.Context, b model.InsertBlock) error
		Rollback(ctx context.Context, number int64) error
	}
	BucketAllocator interface {
		Allocate(ctx context.Context, target int64) (Allocation, error)
	}
	CatchUpMetrics interface {
		ObserveAllocate(err error, started time.Time)
		ObserveBlock(err error, started time.Time)
		SetPending(buckets int, heights int64)
	}
	HeadWatcherMetrics interface {
		ObserveTick(err error, started time.Time)
		ObserveRollback()
		SetCursor(height int64)
		ObserveUnconfirmed(err error)
	}
	// Observer receives ingestion events. Implementations must not block for long.
	Observer interface {
		OnBlock(ctx context.Context, b model.InsertBlock)
		OnTransaction(ctx context.Context, tx model.Transaction)
		OnSyncEnd(ctx context.Context)
	}
)

// Bucket is an inclusive range of heights missing from the store.
type Bucket struct {
	Min int64
	Max int64
}

// Len returns the number of heights still in the bucket.
func (b Bucket) Len() int64 {
	if b.Max < b.Min {
		return 0
	}
	return b.Max - b.Min + 1
}

// Allocation is the outcome of a gap scan below a target height.
type Allocation struct {
	Buckets []Bucket
	// Height is where live following takes over.
	Height int64
}
