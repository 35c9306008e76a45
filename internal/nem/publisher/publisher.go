// Package publisher turns ingestion events into bus messages.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/address"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/pkg/batcher"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Exchange is the topic exchange events are published on.
const Exchange = "events"

const (
	eventBlock       = "block"
	eventTransaction = "transaction"

	flushSize     = 500
	flushInterval = 500 * time.Millisecond
	flushRPS      = 50
)

type message struct {
	event string
	key   string
	body  []byte
}

type blockEvent struct {
	Block int64 `json:"block"`
}

type transactionEvent struct {
	model.Transaction
	Address string `json:"address"`
}

// Publisher publishes block numbers to <svc>_block and every transaction that
// touches an active registered account to <svc>_transaction.<address>.
// It implements the ingestion observer and is safe for concurrent use.
type Publisher struct {
	bus      Bus
	accounts AccountFilter
	metrics  Metrics
	logger   *zap.Logger
	service  string
	network  model.Network
	batcher  *batcher.Batcher[message]
}

// New builds a Publisher. Call Start before the first event and Stop to flush.
func New(bus Bus, accounts AccountFilter, metrics Metrics, service string, network model.Network, logger *zap.Logger) (*Publisher, error) {
	if bus == nil {
		return nil, errors.New("publisher bus is required")
	}
	if accounts == nil {
		return nil, errors.New("publisher account filter is required")
	}
	if metrics == nil {
		return nil, errors.New("publisher metrics is required")
	}

	p := &Publisher{
		bus:      bus,
		accounts: accounts,
		metrics:  metrics,
		logger:   logger.With(zap.String("network", string(network))),
		service:  service,
		network:  network,
	}
	p.batcher = batcher.New[message](p.logger.Named("batcher"), p.flush, flushSize, flushInterval, flushRPS)
	return p, nil
}

// Start begins flushing queued messages.
func (p *Publisher) Start(ctx context.Context) {
	p.batcher.Start(ctx)
}

// Stop flushes queued messages and stops.
func (p *Publisher) Stop() {
	p.batcher.Stop()
}

func (p *Publisher) OnBlock(ctx context.Context, b model.InsertBlock) {
	body, err := json.Marshal(blockEvent{Block: b.Block.Number})
	if err != nil {
		p.logger.Error("encode block event", zap.Int64("number", b.Block.Number), zap.Error(err))
		return
	}
	p.enqueue(ctx, message{event: eventBlock, key: p.service + "_block", body: body})
	p.publishTransactions(ctx, b.Txs)
}

func (p *Publisher) OnTransaction(ctx context.Context, tx model.Transaction) {
	p.publishTransactions(ctx, []model.Transaction{tx})
}

func (p *Publisher) OnSyncEnd(context.Context) {
	p.logger.Info("catch-up complete")
}

func (p *Publisher) publishTransactions(ctx context.Context, txs []model.Transaction) {
	if len(txs) == 0 {
		return
	}

	var candidates []string
	seen := make(map[string]struct{})
	for _, tx := range txs {
		for _, a := range tx.Accounts() {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return
	}

	active, err := p.accounts.ActiveAccounts(ctx, candidates)
	if err != nil {
		p.logger.Error("filter accounts", zap.Int("txs", len(txs)), zap.Error(err))
		return
	}
	if len(active) == 0 {
		return
	}
	registered := make(map[string]struct{}, len(active))
	for _, a := range active {
		registered[a] = struct{}{}
	}

	for _, tx := range txs {
		for _, a := range tx.Accounts() {
			if _, ok := registered[a]; !ok {
				continue
			}
			if err := address.Validate(a, p.network); err != nil {
				p.logger.Warn("skipping invalid account", zap.String("address", a), zap.Error(err))
				continue
			}
			body, err := json.Marshal(transactionEvent{Transaction: tx, Address: a})
			if err != nil {
				p.logger.Error("encode transaction event", zap.String("hash", tx.Hash), zap.Error(err))
				continue
			}
			p.enqueue(ctx, message{event: eventTransaction, key: p.service + "_transaction." + a, body: body})
		}
	}
}

func (p *Publisher) enqueue(ctx context.Context, m message) {
	if err := p.batcher.Add(ctx, m); err != nil {
		p.metrics.ObserveEvent(m.event, err)
		p.logger.Warn("event dropped", zap.String("key", m.key), zap.Error(err))
	}
}

func (p *Publisher) flush(ctx context.Context, batch []message) error {
	started := time.Now()
	var err error
	for _, m := range batch {
		pubErr := p.bus.Publish(ctx, Exchange, m.key, m.body)
		p.metrics.ObserveEvent(m.event, pubErr)
		if pubErr != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", m.key, pubErr))
		}
	}
	p.metrics.ObserveFlush(err, len(batch), started)
	return err
}
