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
	"go.uber.org/zap"
)

// State is the head watcher's position in its follow cycle.
type State int

const (
	StateWaitingForNextBlock State = iota
	StateLinked
	StateRollingBack
)

func (s State) String() string {
	switch s {
	case StateWaitingForNextBlock:
		return "waiting_for_next_block"
	case StateLinked:
		return "linked"
	case StateRollingBack:
		return "rolling_back"
	default:
		return "unknown"
	}
}

// Cursor is the last block the head watcher has linked into the store.
// An empty Hash means the link to the next block cannot be checked locally.
type Cursor struct {
	Height int64
	Hash   string
}

// HeadWatcherService follows the node's tip one block at a time and rolls the
// store back when the node's chain no longer links to what was stored.
type HeadWatcherService struct {
	logger       *zap.Logger
	network      model.Network
	metrics      HeadWatcherMetrics
	requests     NodeRequests
	repo         LedgerRepository
	converter    BlockConverter
	writer       BlockWriter
	observer     Observer
	sleep        func(context.Context, time.Duration) error
	wait         func(context.Context, time.Duration, <-chan struct{}) error
	blockSignal  <-chan struct{}
	tickTimeout  time.Duration
	waitInterval time.Duration
	retryDelay   time.Duration

	mu           sync.Mutex
	cursor       Cursor
	state        State
	bootstrapped bool
	stopped      atomic.Bool
}

// NewHeadWatcherService builds a HeadWatcherService with dependencies.
// blockSignal may be nil, in which case new blocks are found by polling only.
func NewHeadWatcherService(
	repo LedgerRepository,
	requests NodeRequests,
	converter BlockConverter,
	writer BlockWriter,
	observer Observer,
	metrics HeadWatcherMetrics,
	network model.Network,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*HeadWatcherService, error) {
	if metrics == nil {
		return nil, errors.New("head watcher metrics is required")
	}
	if observer == nil {
		observer = NopObserver{}
	}

	return &HeadWatcherService{
		logger:       logger.With(zap.String("network", string(network))),
		network:      network,
		metrics:      metrics,
		requests:     requests,
		repo:         repo,
		converter:    converter,
		writer:       writer,
		observer:     observer,
		sleep:        clock.SleepWithContext,
		wait:         clock.WaitOrSignal,
		blockSignal:  blockSignal,
		tickTimeout:  headTickTimeout,
		waitInterval: headWaitInterval,
		retryDelay:   headRetryDelay,
	}, nil
}

// Run follows the tip until the context is canceled, Stop is called or a fatal
// error occurs. startHeight is the lowest height it fetches itself; a stored
// head at or above startHeight-1 takes precedence.
func (s *HeadWatcherService) Run(ctx context.Context, startHeight int64) error {
	if err := s.init(ctx, startHeight); err != nil {
		return err
	}

	for {
		if s.stopped.Load() {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := s.tick(ctx)
		switch {
		case err == nil:
		case syncerr.Is(err, syncerr.KindNoNewData):
			s.logger.Debug("awaiting next block", zap.Int64("height", s.Cursor().Height+1))
			if waitErr := s.wait(ctx, s.waitInterval, s.blockSignal); waitErr != nil {
				return waitErr
			}
		case syncerr.Is(err, syncerr.KindChainDivergence):
			if rbErr := s.rollback(ctx); rbErr != nil {
				if syncerr.IsFatal(rbErr) {
					return rbErr
				}
				s.logger.Warn("rollback failed, backing off", zap.Error(rbErr), zap.Duration("sleep", s.retryDelay))
				if sleepErr := s.sleep(ctx, s.retryDelay); sleepErr != nil {
					return sleepErr
				}
			}
		case syncerr.IsFatal(err):
			s.logger.Error("head watcher aborted", zap.Error(err))
			return err
		default:
			s.logger.Warn("tick failed, backing off", zap.Error(err), zap.Duration("sleep", s.retryDelay))
			if sleepErr := s.sleep(ctx, s.retryDelay); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

// Stop makes Run return after the current tick.
func (s *HeadWatcherService) Stop() {
	s.stopped.Store(true)
}

// Cursor returns the last linked block.
func (s *HeadWatcherService) Cursor() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// State returns where the watcher is in its cycle.
func (s *HeadWatcherService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *HeadWatcherService) init(ctx context.Context, startHeight int64) error {
	last, err := s.repo.FindLastBlocks(ctx, 1)
	if err != nil {
		return fmt.Errorf("load last block: %w", err)
	}

	// startHeight itself is still to be fetched and linked.
	cursor := Cursor{Height: max(startHeight-1, 0)}
	if len(last) > 0 && last[0].Number >= cursor.Height {
		cursor = Cursor{Height: last[0].Number, Hash: last[0].Hash}
	}

	if err := s.repo.RemoveUnconfirmedTxs(ctx); err != nil {
		return fmt.Errorf("clear unconfirmed pool: %w", err)
	}

	s.setCursor(cursor, StateWaitingForNextBlock)
	s.logger.Info("head watcher started",
		zap.Int64("height", cursor.Height),
		zap.Bool("hash_known", cursor.Hash != ""),
	)
	return nil
}

func (s *HeadWatcherService) tick(ctx context.Context) (err error) {
	ctx, cancel := context.WithTimeout(ctx, s.tickTimeout)
	defer cancel()

	started := time.Now()
	defer func() {
		s.metrics.ObserveTick(err, started)
	}()

	head, err := s.requests.Height(ctx)
	if err != nil {
		return err
	}

	cur := s.Cursor()
	switch {
	case head == cur.Height:
		return syncerr.NoNewData("head watch")
	case head < cur.Height:
		s.setState(StateRollingBack)
		return syncerr.ChainDivergence("head watch", fmt.Errorf("node height %d below cursor %d", head, cur.Height))
	}

	next := cur.Height + 1
	raw, err := s.requests.BlockByNumber(ctx, next)
	if err != nil {
		return err
	}
	if raw == nil {
		return syncerr.NoNewData("head watch")
	}

	block, err := s.converter.Block(raw)
	if err != nil {
		return err
	}
	if block.Block.Number != next {
		return syncerr.Transient("head watch", fmt.Errorf("requested block %d, node served %d", next, block.Block.Number))
	}

	if next > 1 {
		if err := s.verifyLink(ctx, cur, block.Block); err != nil {
			return err
		}
	}
	s.setState(StateLinked)

	if err := s.writer.WriteBlock(ctx, block); err != nil {
		if syncerr.Is(err, syncerr.KindChainDivergence) {
			return syncerr.Transient("head watch", err)
		}
		return err
	}

	s.mu.Lock()
	s.cursor = Cursor{Height: block.Block.Number, Hash: block.Block.Hash}
	s.state = StateWaitingForNextBlock
	s.bootstrapped = true
	s.mu.Unlock()
	s.metrics.SetCursor(block.Block.Number)
	s.observer.OnBlock(ctx, block)
	return nil
}

// verifyLink checks that b builds on the cursor block. When the cursor hash is
// unknown the stored block with b's parent hash is looked up instead. Only the
// first block after startup may be accepted without any local evidence.
func (s *HeadWatcherService) verifyLink(ctx context.Context, cur Cursor, b model.Block) error {
	if cur.Hash != "" {
		if b.PrevBlockHash != cur.Hash {
			s.setState(StateRollingBack)
			return syncerr.ChainDivergence("head watch", fmt.Errorf(
				"block %d parent %s does not match stored %s", b.Number, b.PrevBlockHash, cur.Hash))
		}
		return nil
	}

	parents, err := s.repo.FindBlocksByHash(ctx, []string{b.PrevBlockHash})
	if err != nil {
		return fmt.Errorf("look up parent of block %d: %w", b.Number, err)
	}
	if containsBlock(parents, cur.Height) {
		return nil
	}

	s.mu.Lock()
	bootstrapped := s.bootstrapped
	s.mu.Unlock()
	if !bootstrapped {
		s.logger.Info("accepting first block without a stored parent", zap.Int64("number", b.Number))
		return nil
	}

	s.setState(StateRollingBack)
	return syncerr.ChainDivergence("head watch", fmt.Errorf("parent of block %d is not stored", b.Number))
}

// rollback removes the cursor block and steps back by one.
func (s *HeadWatcherService) rollback(ctx context.Context) error {
	cur := s.Cursor()
	if cur.Height <= 0 {
		s.setCursor(Cursor{}, StateWaitingForNextBlock)
		return nil
	}

	if err := s.writer.Rollback(ctx, cur.Height); err != nil {
		return err
	}

	prev := Cursor{Height: cur.Height - 1}
	last, err := s.repo.FindLastBlocks(ctx, 2)
	if err != nil {
		return fmt.Errorf("reload head after rollback: %w", err)
	}
	for _, b := range last {
		if b.Number == prev.Height {
			prev.Hash = b.Hash
			break
		}
	}

	s.setCursor(prev, StateWaitingForNextBlock)
	s.metrics.ObserveRollback()
	s.metrics.SetCursor(prev.Height)
	s.logger.Warn("rolled back head block",
		zap.Int64("removed", cur.Height),
		zap.Int64("height", prev.Height),
		zap.Bool("hash_known", prev.Hash != ""),
	)
	return nil
}

func (s *HeadWatcherService) setCursor(c Cursor, st State) {
	s.mu.Lock()
	s.cursor = c
	s.state = st
	s.mu.Unlock()
}

func (s *HeadWatcherService) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}
