package redis

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const feedChannelPrefix = "contracts:changed:"

// ContractFeed carries per-contract change signals over Redis pub/sub. The
// message body is ignored; a publication only means "re-fetch the record".
type ContractFeed struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewContractFeed(client *redis.Client, log zerolog.Logger) *ContractFeed {
	return &ContractFeed{client: client, log: log}
}

// Publish emits a change signal for the tracking number.
func (f *ContractFeed) Publish(ctx context.Context, trackingNumber string) error {
	return f.client.Publish(ctx, feedChannelPrefix+trackingNumber, "1").Err()
}

// Subscribe registers for change signals on one tracking number. The returned
// stop function closes the underlying pub/sub connection; the signal channel is
// closed once the pump drains. Signals are conflated: a slow consumer sees at
// least one signal, not necessarily one per publication.
func (f *ContractFeed) Subscribe(ctx context.Context, trackingNumber string) (<-chan struct{}, func(), error) {
	sub := f.client.Subscribe(ctx, feedChannelPrefix+trackingNumber)
	// Force the subscription handshake so a dead Redis surfaces here, not as a
	// silently idle channel.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for range sub.Channel() {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			if err := sub.Close(); err != nil {
				f.log.Debug().Err(err).Str("tracking", trackingNumber).Msg("pubsub close")
			}
		})
	}
	return out, stop, nil
}
