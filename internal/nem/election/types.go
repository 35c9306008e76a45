package election

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Bus is a topic publish/subscribe transport shared by every instance.
	Bus interface {
		Publish(ctx context.Context, exchange, key string, body []byte) error
		Subscribe(ctx context.Context, exchange, queue, key string) (<-chan []byte, error)
	}
	Metrics interface {
		ObserveRound(result string)
		SetLeader(leader bool)
	}
)
