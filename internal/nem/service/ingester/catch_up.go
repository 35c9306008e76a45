package ingester

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
	"github.com/goodnatureofminers/blockinsight7000-nem/pkg/workerpool"
	"go.uber.org/zap"
)

// CatchUpService fills the gaps below the node's height at startup.
// Buckets are worked newest first and each bucket is walked downwards.
// Every stored block is reported to the observer, followed by a single
// OnSyncEnd once no bucket is left.
type CatchUpService struct {
	logger       *zap.Logger
	network      model.Network
	metrics      CatchUpMetrics
	requests     NodeRequests
	converter    BlockConverter
	writer       BlockWriter
	allocator    BucketAllocator
	observer     Observer
	sleep        func(context.Context, time.Duration) error
	workerCount  int
	startTimeout time.Duration
	retryDelay   time.Duration

	mu      sync.Mutex
	buckets []*Bucket
	failed  atomic.Int64
	stopped atomic.Bool
	started atomic.Bool
	done    chan struct{}
	err     error
}

// NewCatchUpService builds a CatchUpService with dependencies.
func NewCatchUpService(
	repo LedgerRepository,
	requests NodeRequests,
	converter BlockConverter,
	writer BlockWriter,
	observer Observer,
	metrics CatchUpMetrics,
	network model.Network,
	workerCount int,
	logger *zap.Logger,
) (*CatchUpService, error) {
	if metrics == nil {
		return nil, errors.New("catch-up metrics is required")
	}
	if observer == nil {
		observer = NopObserver{}
	}
	if workerCount < 1 {
		workerCount = defaultWorkerCount
	}

	return &CatchUpService{
		logger:       logger.With(zap.String("network", string(network))),
		network:      network,
		metrics:      metrics,
		requests:     requests,
		converter:    converter,
		writer:       writer,
		observer:     observer,
		sleep:        clock.SleepWithContext,
		workerCount:  workerCount,
		startTimeout: catchUpStartTimeout,
		retryDelay:   catchUpRetryDelay,
		done:         make(chan struct{}),
		allocator: &bucketAllocator{
			repo:      repo,
			chunkSize: allocationChunkSize,
			divider:   allocationDivider,
		},
	}, nil
}

// Start allocates the missing buckets and begins filling them in the background.
// It returns the height from which live following should continue.
func (s *CatchUpService) Start(ctx context.Context) (int64, error) {
	if !s.started.CompareAndSwap(false, true) {
		return 0, errors.New("catch-up already started")
	}

	startCtx, cancel := context.WithTimeout(ctx, s.startTimeout)
	defer cancel()

	target, err := s.requests.Height(startCtx)
	if err != nil {
		close(s.done)
		return 0, fmt.Errorf("catch-up target height: %w", err)
	}

	started := time.Now()
	alloc, err := s.allocator.Allocate(startCtx, target)
	s.metrics.ObserveAllocate(err, started)
	if err != nil {
		close(s.done)
		return 0, fmt.Errorf("allocate buckets: %w", err)
	}

	s.mu.Lock()
	s.buckets = make([]*Bucket, 0, len(alloc.Buckets))
	for _, b := range alloc.Buckets {
		s.buckets = append(s.buckets, &Bucket{Min: b.Min, Max: b.Max})
	}
	s.mu.Unlock()
	s.publishPending()

	s.logger.Info("catch-up allocated",
		zap.Int64("target", target),
		zap.Int64("end_height", alloc.Height),
		zap.Int("buckets", len(alloc.Buckets)),
	)

	go s.loop(ctx)
	return alloc.Height, nil
}

// Wait blocks until the background work finishes and returns its terminal error.
// It must be called after Start.
func (s *CatchUpService) Wait() error {
	<-s.done
	return s.err
}

// Finished reports whether the background work has ended.
func (s *CatchUpService) Finished() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Stop asks the background work to finish after the heights in flight.
func (s *CatchUpService) Stop() {
	s.stopped.Store(true)
}

// Pending returns the buckets that still have heights to fetch.
func (s *CatchUpService) Pending() []Bucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Bucket, 0, len(s.buckets))
	for _, b := range s.buckets {
		if b.Len() > 0 {
			out = append(out, *b)
		}
	}
	return out
}

func (s *CatchUpService) loop(ctx context.Context) {
	defer close(s.done)

	for {
		if s.stopped.Load() {
			s.logger.Info("catch-up stopped", zap.Int("pending_buckets", len(s.Pending())))
			return
		}
		if ctx.Err() != nil {
			s.err = ctx.Err()
			return
		}

		buckets := s.active()
		if len(buckets) == 0 {
			s.logger.Info("catch-up finished")
			s.observer.OnSyncEnd(ctx)
			return
		}

		s.failed.Store(0)
		err := workerpool.Process(ctx, s.workerCount, buckets, s.processBucket)
		s.publishPending()
		switch {
		case err != nil && syncerr.IsFatal(err):
			s.logger.Error("catch-up aborted", zap.Error(err))
			s.err = err
			return
		case err != nil && ctx.Err() != nil:
			s.err = ctx.Err()
			return
		case err != nil:
			s.logger.Warn("catch-up pass failed, backing off", zap.Error(err), zap.Duration("sleep", s.retryDelay))
			s.failed.Add(1)
		}

		if s.failed.Load() > 0 {
			if sleepErr := s.sleep(ctx, s.retryDelay); sleepErr != nil {
				s.err = sleepErr
				return
			}
		}
	}
}

// processBucket fetches heights from the top of b downwards. A transient failure
// leaves the remaining heights in place for the next pass.
func (s *CatchUpService) processBucket(ctx context.Context, b *Bucket) error {
	for {
		if s.stopped.Load() || ctx.Err() != nil {
			return nil
		}
		height, ok := s.top(b)
		if !ok {
			return nil
		}

		if err := s.processHeight(ctx, height); err != nil {
			if syncerr.IsFatal(err) {
				return err
			}
			s.logger.Warn("catch-up height failed, keeping bucket pending",
				zap.Int64("height", height),
				zap.Error(err),
			)
			s.failed.Add(1)
			return nil
		}
		s.pop(b)
	}
}

func (s *CatchUpService) processHeight(ctx context.Context, height int64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBlock(err, started)
	}()

	raw, err := s.requests.BlockByNumber(ctx, height)
	if err != nil {
		return err
	}
	if raw == nil {
		return syncerr.Transient("catch-up fetch", fmt.Errorf("block %d not available yet", height))
	}

	block, err := s.converter.Block(raw)
	if err != nil {
		return err
	}
	if err = s.writer.WriteBlock(ctx, block); err != nil {
		return err
	}
	s.observer.OnBlock(ctx, block)
	return nil
}

func (s *CatchUpService) active() []*Bucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.buckets[:0]
	for _, b := range s.buckets {
		if b.Len() > 0 {
			kept = append(kept, b)
		}
	}
	s.buckets = kept
	return append([]*Bucket(nil), kept...)
}

func (s *CatchUpService) top(b *Bucket) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.Len() == 0 {
		return 0, false
	}
	return b.Max, true
}

func (s *CatchUpService) pop(b *Bucket) {
	s.mu.Lock()
	b.Max--
	s.mu.Unlock()
	s.publishPending()
}

func (s *CatchUpService) publishPending() {
	s.mu.Lock()
	var (
		buckets int
		heights int64
	)
	for _, b := range s.buckets {
		if n := b.Len(); n > 0 {
			buckets++
			heights += n
		}
	}
	s.mu.Unlock()
	s.metrics.SetPending(buckets, heights)
}
