package transport

import (
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/provider"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/service/ingester"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ElectionView interface {
		ID() string
		Leader() string
		IsLeader() bool
	}
	ProviderView interface {
		Current() (provider.Provider, bool)
	}
	HeadView interface {
		Cursor() ingester.Cursor
		State() ingester.State
	}
	CatchUpView interface {
		Pending() []ingester.Bucket
		Finished() bool
	}
)
