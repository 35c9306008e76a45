package ingester

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
)

// Observers fans every event out to each member in order.
type Observers []Observer

func (o Observers) OnBlock(ctx context.Context, b model.InsertBlock) {
	for _, obs := range o {
		obs.OnBlock(ctx, b)
	}
}

func (o Observers) OnTransaction(ctx context.Context, tx model.Transaction) {
	for _, obs := range o {
		obs.OnTransaction(ctx, tx)
	}
}

func (o Observers) OnSyncEnd(ctx context.Context) {
	for _, obs := range o {
		obs.OnSyncEnd(ctx)
	}
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnBlock(context.Context, model.InsertBlock) {}
func (NopObserver) OnTransaction(context.Context, model.Transaction) {}
func (NopObserver) OnSyncEnd(context.Context) {}
