// Package provider selects the upstream node the synchronization engines talk to.
package provider

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultQueryTimeout  = 10 * time.Second
	defaultSelectTimeout = 15 * time.Second
	defaultCooldown      = 10 * time.Second
)

// ErrNoProviders is returned when no enabled provider reported a height.
var ErrNoProviders = errors.New("no provider available")

// Provider is a selected upstream node together with the height it reported.
type Provider struct {
	Config
	Height int64
}

// HeightFunc queries the chain height of an HTTP endpoint.
type HeightFunc func(ctx context.Context, endpoint string) (int64, error)

// Metrics collects registry observations.
type Metrics interface {
	ObserveSelect(err error, started time.Time)
	SetHeight(provider string, height int64)
	ObserveChange()
	ObserveDisable(provider string)
}

// Option customizes a Registry.
type Option func(*Registry)

// WithClock replaces the wall clock used for cooldowns.
func WithClock(c clock.Clock) Option {
	return func(r *Registry) { r.clock = c }
}

// WithTimeouts overrides the per-query and whole-selection timeouts.
func WithTimeouts(query, selection time.Duration) Option {
	return func(r *Registry) {
		r.queryTimeout = query
		r.selectTimeout = selection
	}
}

// WithCooldown overrides how long a disabled provider stays out of selection.
func WithCooldown(d time.Duration) Option {
	return func(r *Registry) { r.cooldown = d }
}

// Registry tracks configured providers and the currently selected one.
type Registry struct {
	configs       []Config
	height        HeightFunc
	metrics       Metrics
	logger        *zap.Logger
	clock         clock.Clock
	queryTimeout  time.Duration
	selectTimeout time.Duration
	cooldown      time.Duration

	mu        sync.Mutex
	current   *Provider
	lastKey   string
	disabled  map[string]time.Time
	observers []func(Provider)
}

// NewRegistry constructs a Registry. Configs keep their order, which decides ties.
func NewRegistry(configs []Config, height HeightFunc, metrics Metrics, logger *zap.Logger, opts ...Option) *Registry {
	r := &Registry{
		configs:       slices.Clone(configs),
		height:        height,
		metrics:       metrics,
		logger:        logger.Named("providerRegistry"),
		clock:         clock.Real{},
		queryTimeout:  defaultQueryTimeout,
		selectTimeout: defaultSelectTimeout,
		cooldown:      defaultCooldown,
		disabled:      make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size is the number of configured providers.
func (r *Registry) Size() int {
	return len(r.configs)
}

// OnChange registers fn to run whenever the selected provider changes.
func (r *Registry) OnChange(fn func(Provider)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// Current returns the selected provider without triggering a selection.
func (r *Registry) Current() (Provider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return Provider{}, false
	}
	return *r.current, true
}

// Provider returns the selected provider, selecting one first if needed.
func (r *Registry) Provider(ctx context.Context) (Provider, error) {
	if p, ok := r.Current(); ok {
		return p, nil
	}
	return r.SelectProvider(ctx)
}

// SelectProvider queries every enabled provider concurrently and selects the highest one.
// Providers that fail or time out are ignored. When none answers the error is UpstreamUnreachable.
func (r *Registry) SelectProvider(ctx context.Context) (selected Provider, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveSelect(err, started)
	}()

	candidates := r.enabled()
	heights := r.queryHeights(ctx, candidates)
	if ctx.Err() != nil {
		return Provider{}, ctx.Err()
	}

	best := -1
	for i, cfg := range candidates {
		r.metrics.SetHeight(cfg.Key(), heights[i])
		if heights[i] <= 0 {
			continue
		}
		if best < 0 || heights[i] > heights[best] {
			best = i
		}
	}
	if best < 0 {
		return Provider{}, syncerr.Unreachable("select provider", ErrNoProviders)
	}

	selected = Provider{Config: candidates[best], Height: heights[best]}
	r.setCurrent(selected)
	return selected, nil
}

// DisableProvider removes p from selection until the cooldown passes.
func (r *Registry) DisableProvider(p Provider) {
	key := p.Key()
	r.mu.Lock()
	r.disabled[key] = r.clock.Now().Add(r.cooldown)
	if r.current != nil && r.current.Key() == key {
		r.current = nil
	}
	r.mu.Unlock()

	r.metrics.ObserveDisable(key)
	r.logger.Warn("provider disabled", zap.String("provider", key), zap.Duration("cooldown", r.cooldown))
}

func (r *Registry) enabled() []Config {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	out := make([]Config, 0, len(r.configs))
	for _, cfg := range r.configs {
		if until, ok := r.disabled[cfg.Key()]; ok {
			if now.Before(until) {
				continue
			}
			delete(r.disabled, cfg.Key())
		}
		out = append(out, cfg)
	}
	return out
}

func (r *Registry) queryHeights(ctx context.Context, candidates []Config) []int64 {
	ctx, cancel := context.WithTimeout(ctx, r.selectTimeout)
	defer cancel()

	heights := make([]int64, len(candidates))
	var g errgroup.Group
	for i, cfg := range candidates {
		g.Go(func() error {
			qctx, qcancel := context.WithTimeout(ctx, r.queryTimeout)
			defer qcancel()

			h, err := r.height(qctx, cfg.HTTP)
			if err != nil {
				r.logger.Debug("provider height query failed", zap.String("provider", cfg.Key()), zap.Error(err))
				heights[i] = -1
				return nil
			}
			heights[i] = h
			return nil
		})
	}
	_ = g.Wait()
	return heights
}

func (r *Registry) setCurrent(selected Provider) {
	r.mu.Lock()
	r.current = &selected
	changed := r.lastKey != selected.Key()
	r.lastKey = selected.Key()
	observers := slices.Clone(r.observers)
	r.mu.Unlock()

	if !changed {
		return
	}
	r.metrics.ObserveChange()
	r.logger.Info("provider selected", zap.String("provider", selected.Key()), zap.Int64("height", selected.Height))
	for _, fn := range observers {
		fn(selected)
	}
}
