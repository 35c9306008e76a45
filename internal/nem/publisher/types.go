package publisher

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/provider"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Bus interface {
		Publish(ctx context.Context, exchange, key string, body []byte) error
		Subscribe(ctx context.Context, exchange, queue, key string) (<-chan []byte, error)
	}
	AccountFilter interface {
		ActiveAccounts(ctx context.Context, addresses []string) ([]string, error)
	}
	ProviderSource interface {
		Current() (provider.Provider, bool)
	}
	Metrics interface {
		ObserveEvent(event string, err error)
		ObserveFlush(err error, size int, started time.Time)
	}
)
