// Package bus is the AMQP 0-9-1 topic transport used for election and event publishing.
package bus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	dialAttempts = 10
	dialDelay    = 3 * time.Second
)

// ErrClosed is returned by Wait when the connection was closed by Close.
var ErrClosed = errors.New("bus closed")

// Bus publishes and consumes on topic exchanges over a single channel.
type Bus struct {
	logger   *zap.Logger
	conn     *amqp.Connection
	closed   chan *amqp.Error
	chClosed chan *amqp.Error

	mu       sync.Mutex
	ch       *amqp.Channel
	declared map[string]struct{}
}

// Dial connects to url, retrying with a constant backoff, and declares the given
// topic exchanges.
func Dial(ctx context.Context, url string, logger *zap.Logger, exchanges ...string) (*Bus, error) {
	var conn *amqp.Connection
	backoff := retry.WithMaxRetries(dialAttempts-1, retry.NewConstant(dialDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		c, err := amqp.Dial(url)
		if err != nil {
			logger.Warn("amqp dial failed, retrying", zap.Error(err))
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("open channel: %w", err), conn.Close())
	}

	b := &Bus{
		logger:   logger,
		conn:     conn,
		ch:       ch,
		closed:   conn.NotifyClose(make(chan *amqp.Error, 1)),
		chClosed: ch.NotifyClose(make(chan *amqp.Error, 1)),
		declared: make(map[string]struct{}),
	}
	for _, ex := range exchanges {
		if err := b.declareExchange(ex); err != nil {
			return nil, multierr.Append(err, b.Close())
		}
	}
	return b, nil
}

// Publish sends body to exchange with the routing key.
func (b *Bus) Publish(ctx context.Context, exchange, key string, body []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}); err != nil {
		return fmt.Errorf("publish %s/%s: %w", exchange, key, err)
	}
	return nil
}

// Subscribe binds an auto-delete queue to key on exchange and streams message
// bodies until ctx is canceled or the channel closes.
func (b *Bus) Subscribe(ctx context.Context, exchange, queue, key string) (<-chan []byte, error) {
	b.mu.Lock()
	deliveries, err := b.bind(exchange, queue, key)
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				select {
				case out <- d.Body:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Wait blocks until the connection or its channel drops, or ctx is canceled. A
// dropped connection or channel is returned as an error so the caller can stop
// the process.
func (b *Bus) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case amqpErr, ok := <-b.closed:
		if !ok || amqpErr == nil {
			return ErrClosed
		}
		return fmt.Errorf("amqp connection lost: %w", amqpErr)
	case amqpErr, ok := <-b.chClosed:
		if !ok || amqpErr == nil {
			return ErrClosed
		}
		return fmt.Errorf("amqp channel lost: %w", amqpErr)
	}
}

// Close closes the channel and the connection.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var err error
	if !b.ch.IsClosed() {
		err = multierr.Append(err, b.ch.Close())
	}
	if !b.conn.IsClosed() {
		err = multierr.Append(err, b.conn.Close())
	}
	return err
}

func (b *Bus) bind(exchange, queue, key string) (<-chan amqp.Delivery, error) {
	if err := b.declareExchange(exchange); err != nil {
		return nil, err
	}
	q, err := b.ch.QueueDeclare(queue, false, true, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := b.ch.QueueBind(q.Name, key, exchange, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue %s to %s: %w", q.Name, key, err)
	}
	deliveries, err := b.ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume %s: %w", q.Name, err)
	}
	return deliveries, nil
}

func (b *Bus) declareExchange(name string) error {
	if _, ok := b.declared[name]; ok {
		return nil
	}
	if err := b.ch.ExchangeDeclare(name, amqp.ExchangeTopic, false, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", name, err)
	}
	b.declared[name] = struct{}{}
	return nil
}
