package node

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/provider"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Registry is the part of the provider registry the request façade needs.
	Registry interface {
		SelectProvider(ctx context.Context) (provider.Provider, error)
		Provider(ctx context.Context) (provider.Provider, error)
		DisableProvider(p provider.Provider)
		Size() int
	}
	// BlockFetcher fetches raw blocks from a given endpoint.
	BlockFetcher interface {
		BlockAt(ctx context.Context, endpoint string, height int64) (*model.RawBlock, error)
	}
	Metrics interface {
		Observe(method string, err error, started time.Time)
	}
	FeedMetrics interface {
		ObserveFeedMessage(destination string)
		ObserveFeedConnect(err error)
		ObserveFeedDropped(destination string)
	}
)
