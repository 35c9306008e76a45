// Package election picks one leader among instances sharing a service name.
//
// Each round an instance asks "who leads?" on <svc>_findMaster. The current
// leader answers with its id on <svc>_setMaster. If nobody answers inside the
// find window the instance proclaims itself. Every instance records the last
// id seen on <svc>_setMaster, so concurrent proclamations settle on whichever
// arrives last. Non-leaders repeat the round until they win.
package election

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Exchange is the topic exchange the election messages travel on.
const Exchange = "events"

const (
	defaultStartupDelay = 2 * time.Second
	defaultFindWindow   = 2 * time.Second
	defaultSyncWindow   = 2 * time.Second
	defaultRoundPeriod  = 10 * time.Second

	findMasterSuffix = "findMaster"
	setMasterSuffix  = "setMaster"
)

// Round results reported to metrics.
const (
	ResultAnswered   = "answered"
	ResultProclaimed = "proclaimed"
	ResultError      = "error"
)

// Election runs the leader protocol for one instance.
type Election struct {
	bus     Bus
	metrics Metrics
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
	id      string
	service string

	startupDelay time.Duration
	findWindow   time.Duration
	syncWindow   time.Duration
	roundPeriod  time.Duration

	mu       sync.Mutex
	leader   string
	isLeader bool
}

// New builds an Election with a fresh instance id.
func New(bus Bus, service string, metrics Metrics, logger *zap.Logger) (*Election, error) {
	if bus == nil {
		return nil, errors.New("election bus is required")
	}
	if metrics == nil {
		return nil, errors.New("election metrics is required")
	}
	if service == "" {
		return nil, errors.New("election service name is required")
	}

	id := uuid.NewString()
	return &Election{
		bus:          bus,
		metrics:      metrics,
		logger:       logger.With(zap.String("instance", id)),
		sleep:        clock.SleepWithContext,
		id:           id,
		service:      service,
		startupDelay: defaultStartupDelay,
		findWindow:   defaultFindWindow,
		syncWindow:   defaultSyncWindow,
		roundPeriod:  defaultRoundPeriod,
	}, nil
}

// ID returns this instance's id.
func (e *Election) ID() string { return e.id }

// Leader returns the last announced leader id, empty while unknown.
func (e *Election) Leader() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.leader
}

// IsLeader reports whether the last announcement named this instance.
func (e *Election) IsLeader() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.isLeader
}

// Start subscribes to the election topics and returns once this instance is
// leader. The subscriptions keep answering peers until ctx is canceled.
func (e *Election) Start(ctx context.Context) error {
	find, err := e.bus.Subscribe(ctx, Exchange, e.queue(findMasterSuffix), e.route(findMasterSuffix))
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", e.route(findMasterSuffix), err)
	}
	set, err := e.bus.Subscribe(ctx, Exchange, e.queue(setMasterSuffix), e.route(setMasterSuffix))
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", e.route(setMasterSuffix), err)
	}
	go e.consume(ctx, find, set)

	if err := e.sleep(ctx, e.startupDelay); err != nil {
		return err
	}

	for {
		if err := e.round(ctx); err != nil {
			e.metrics.ObserveRound(ResultError)
			return err
		}
		if e.IsLeader() {
			e.logger.Info("took leadership")
			return nil
		}
		e.logger.Debug("following", zap.String("leader", e.Leader()))
		if err := e.sleep(ctx, e.roundPeriod); err != nil {
			return err
		}
	}
}

func (e *Election) round(ctx context.Context) error {
	e.mu.Lock()
	e.leader = ""
	e.mu.Unlock()

	if err := e.bus.Publish(ctx, Exchange, e.route(findMasterSuffix), []byte(e.id)); err != nil {
		return fmt.Errorf("publish find: %w", err)
	}
	if err := e.sleep(ctx, e.findWindow); err != nil {
		return err
	}

	if e.Leader() != "" {
		e.metrics.ObserveRound(ResultAnswered)
		return nil
	}

	e.logger.Info("no leader answered, proclaiming")
	if err := e.announce(ctx); err != nil {
		return err
	}
	e.metrics.ObserveRound(ResultProclaimed)
	return e.sleep(ctx, e.syncWindow)
}

func (e *Election) consume(ctx context.Context, find, set <-chan []byte) {
	for find != nil || set != nil {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-find:
			if !ok {
				find = nil
				continue
			}
			if e.IsLeader() {
				if err := e.announce(ctx); err != nil {
					e.logger.Warn("answer find request failed", zap.Error(err))
				}
			}
		case body, ok := <-set:
			if !ok {
				set = nil
				continue
			}
			e.record(string(body))
		}
	}
}

func (e *Election) record(leader string) {
	e.mu.Lock()
	was := e.isLeader
	e.leader = leader
	e.isLeader = leader == e.id
	now := e.isLeader
	e.mu.Unlock()

	if was != now {
		e.metrics.SetLeader(now)
	}
}

func (e *Election) announce(ctx context.Context) error {
	if err := e.bus.Publish(ctx, Exchange, e.route(setMasterSuffix), []byte(e.id)); err != nil {
		return fmt.Errorf("publish set: %w", err)
	}
	return nil
}

func (e *Election) route(suffix string) string {
	return e.service + "_" + suffix
}

func (e *Election) queue(suffix string) string {
	return e.route(suffix) + "_" + e.id
}
