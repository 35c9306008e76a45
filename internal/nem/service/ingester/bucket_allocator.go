package ingester

import (
	"context"
	"fmt"
	"sort"
)

// bucketAllocator finds the heights below a target that the store is missing.
// It counts stored blocks chunk by chunk and only descends into chunks that are
// partially filled, so a mostly complete store costs a handful of queries.
type bucketAllocator struct {
	repo      LedgerRepository
	chunkSize int64
	divider   int64
}

func (a *bucketAllocator) Allocate(ctx context.Context, target int64) (Allocation, error) {
	alloc := Allocation{Height: max(target-1, 0)}
	if target < 2 {
		return alloc, nil
	}

	buckets, err := a.scan(ctx, 0, target-2, a.chunkSize)
	if err != nil {
		return Allocation{}, err
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Min > buckets[j].Min })
	alloc.Buckets = buckets
	return alloc, nil
}

func (a *bucketAllocator) scan(ctx context.Context, lo, hi, size int64) ([]Bucket, error) {
	var buckets []Bucket
	for start := lo; start <= hi; start += size {
		end := min(start+size-1, hi)
		count, err := a.repo.CountBlocksInRange(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("count blocks in [%d, %d]: %w", start, end, err)
		}

		switch {
		case count >= end-start+1:
			// complete
		case count == 0:
			buckets = append(buckets, Bucket{Min: start, Max: end})
		default:
			nested, err := a.scan(ctx, start, end, max(size/a.divider, 1))
			if err != nil {
				return nil, err
			}
			buckets = append(buckets, nested...)
		}
	}
	return buckets, nil
}
