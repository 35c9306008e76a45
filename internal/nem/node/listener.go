package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/provider"
	"github.com/gorilla/websocket"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	unconfirmedDestination = "/unconfirmed"
	newBlocksDestination   = "/blocks/new"
	websocketPath          = "w/messages/websocket"

	defaultReconnectDelay = 5 * time.Second
	handshakeTimeout      = 10 * time.Second
)

// Listener keeps a STOMP subscription to the selected provider's websocket feed.
// It delivers pending transactions on Unconfirmed and a wake-up on BlockSignal for every new block.
type Listener struct {
	dialer  *websocket.Dialer
	metrics FeedMetrics
	logger  *zap.Logger
	sleep   func(ctx context.Context, d time.Duration) error

	reconnectDelay time.Duration

	mu       sync.Mutex
	endpoint string
	changed  chan struct{}

	unconfirmed chan model.UnconfirmedTransaction
	blockSignal chan struct{}
}

// NewListener constructs a Listener. It connects once a provider is announced via ProviderChanged.
func NewListener(metrics FeedMetrics, logger *zap.Logger) *Listener {
	return &Listener{
		dialer:         &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		metrics:        metrics,
		logger:         logger.Named("nodeListener"),
		sleep:          clock.SleepWithContext,
		reconnectDelay: defaultReconnectDelay,
		changed:        make(chan struct{}, 1),
		unconfirmed:    make(chan model.UnconfirmedTransaction, 256),
		blockSignal:    make(chan struct{}, 1),
	}
}

// Unconfirmed streams pending transactions from the push feed.
func (l *Listener) Unconfirmed() <-chan model.UnconfirmedTransaction {
	return l.unconfirmed
}

// BlockSignal fires when the node announces a new block. Signals coalesce.
func (l *Listener) BlockSignal() <-chan struct{} {
	return l.blockSignal
}

// ProviderChanged points the listener at p's websocket endpoint and forces a reconnect.
func (l *Listener) ProviderChanged(p provider.Provider) {
	l.mu.Lock()
	l.endpoint = p.WS
	l.mu.Unlock()

	select {
	case l.changed <- struct{}{}:
	default:
	}
}

func (l *Listener) currentEndpoint() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.endpoint
}

// Run keeps the subscription alive until ctx is canceled, then unsubscribes.
func (l *Listener) Run(ctx context.Context) error {
	for {
		select {
		case <-l.changed:
		default:
		}
		endpoint := l.currentEndpoint()
		if endpoint == "" {
			select {
			case <-ctx.Done():
				return nil
			case <-l.changed:
				continue
			}
		}

		err := l.session(ctx, endpoint)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, errProviderChanged) {
			continue
		}
		l.logger.Warn("feed session ended", zap.String("endpoint", endpoint), zap.Error(err))
		if err := l.sleep(ctx, l.reconnectDelay); err != nil {
			return nil
		}
	}
}

var errProviderChanged = errors.New("provider changed")

func (l *Listener) session(ctx context.Context, endpoint string) error {
	target, err := websocketURL(endpoint)
	if err != nil {
		return err
	}

	conn, _, err := l.dialer.DialContext(ctx, target, nil)
	l.metrics.ObserveFeedConnect(err)
	if err != nil {
		return fmt.Errorf("dial %s: %w", target, err)
	}

	subscriptions := []string{unconfirmedDestination, newBlocksDestination}
	if err := handshake(conn, subscriptions); err != nil {
		return multierr.Append(err, conn.Close())
	}
	l.logger.Info("feed subscribed", zap.String("endpoint", target))

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var stopReason error
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		select {
		case <-sessionCtx.Done():
		case <-l.changed:
			stopReason = errProviderChanged
		}
		cancel()
		if err := teardown(conn, subscriptions); err != nil {
			l.logger.Debug("feed teardown", zap.Error(err))
		}
	}()

	readErr := l.readLoop(sessionCtx, conn)
	cancel()
	<-closed
	if stopReason != nil {
		return stopReason
	}
	return readErr
}

func handshake(conn *websocket.Conn, destinations []string) error {
	connect := frame{command: cmdConnect, headers: map[string]string{
		"accept-version": "1.1,1.0",
		"heart-beat":     "0,0",
	}}
	if err := conn.WriteMessage(websocket.TextMessage, connect.encode()); err != nil {
		return fmt.Errorf("send connect: %w", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("await connected: %w", err)
		}
		f, err := decodeFrame(data)
		if errors.Is(err, errEmptyFrame) {
			continue
		}
		if err != nil {
			return err
		}
		if f.command == cmdError {
			return fmt.Errorf("stomp error: %s", f.headers["message"])
		}
		if f.command == cmdConnected {
			break
		}
	}
	_ = conn.SetReadDeadline(time.Time{})

	for i, dest := range destinations {
		sub := frame{command: cmdSubscribe, headers: map[string]string{
			"id":          subscriptionID(i),
			"destination": dest,
		}}
		if err := conn.WriteMessage(websocket.TextMessage, sub.encode()); err != nil {
			return fmt.Errorf("subscribe %s: %w", dest, err)
		}
	}
	return nil
}

func teardown(conn *websocket.Conn, destinations []string) error {
	var err error
	for i := range destinations {
		unsub := frame{command: cmdUnsubscribe, headers: map[string]string{"id": subscriptionID(i)}}
		err = multierr.Append(err, conn.WriteMessage(websocket.TextMessage, unsub.encode()))
	}
	disconnect := frame{command: cmdDisconnect, headers: map[string]string{}}
	err = multierr.Append(err, conn.WriteMessage(websocket.TextMessage, disconnect.encode()))
	return multierr.Append(err, conn.Close())
}

func (l *Listener) readLoop(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read feed: %w", err)
		}
		f, err := decodeFrame(data)
		if errors.Is(err, errEmptyFrame) {
			continue
		}
		if err != nil {
			l.logger.Warn("skip undecodable frame", zap.Error(err))
			continue
		}

		switch f.command {
		case cmdMessage:
			if err := l.dispatch(ctx, f); err != nil {
				return err
			}
		case cmdError:
			return fmt.Errorf("stomp error: %s", f.headers["message"])
		}
	}
}

func (l *Listener) dispatch(ctx context.Context, f frame) error {
	destination := f.headers["destination"]
	switch {
	case destination == newBlocksDestination:
		l.metrics.ObserveFeedMessage(newBlocksDestination)
		select {
		case l.blockSignal <- struct{}{}:
		default:
		}
	case strings.HasPrefix(destination, unconfirmedDestination):
		l.metrics.ObserveFeedMessage(unconfirmedDestination)
		tx, err := parseUnconfirmed(destination, f.body)
		if err != nil {
			l.logger.Warn("skip unparsable unconfirmed transaction", zap.Error(err))
			return nil
		}
		select {
		case l.unconfirmed <- tx:
		case <-ctx.Done():
			return ctx.Err()
		default:
			// a stalled consumer must not hold the read loop or the session teardown
			l.metrics.ObserveFeedDropped(unconfirmedDestination)
			l.logger.Warn("unconfirmed backlog full, dropping transaction", zap.String("address", tx.Address))
		}
	}
	return nil
}

// parseUnconfirmed accepts both the {meta, transaction} envelope and a bare transaction body.
func parseUnconfirmed(destination string, body []byte) (model.UnconfirmedTransaction, error) {
	var envelope model.RawTransactionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return model.UnconfirmedTransaction{}, fmt.Errorf("decode unconfirmed: %w", err)
	}

	out := model.UnconfirmedTransaction{
		Tx:           envelope.Transaction,
		DeclaredHash: envelope.Meta.Hash.Data,
		Address:      strings.TrimPrefix(strings.TrimPrefix(destination, unconfirmedDestination), "/"),
	}
	if out.Tx == nil {
		var tx model.RawTransaction
		if err := json.Unmarshal(body, &tx); err != nil {
			return model.UnconfirmedTransaction{}, fmt.Errorf("decode unconfirmed: %w", err)
		}
		out.Tx = &tx
	}
	if out.Tx.Type == 0 {
		return model.UnconfirmedTransaction{}, errors.New("decode unconfirmed: transaction type missing")
	}
	return out, nil
}

func websocketURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse ws endpoint: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	return u.JoinPath(websocketPath).String(), nil
}

func subscriptionID(i int) string {
	return fmt.Sprintf("sub-%d", i)
}
