package services

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redisEventsChannel = "fitnessmap:events"

// RedisBroker relays events through Redis pub/sub so subscribers connected to
// any instance see them. Local delivery goes through the wrapped hub.
type RedisBroker struct {
	rdb   *redis.Client
	local *RealtimeHub
	log   zerolog.Logger
}

func NewRedisBroker(rdb *redis.Client, local *RealtimeHub, log zerolog.Logger) *RedisBroker {
	return &RedisBroker{rdb: rdb, local: local, log: log.With().Str("component", "redis_broker").Logger()}
}

// Publish sends ev to Redis. When Redis is unreachable the event is still
// delivered to this instance's subscribers.
func (b *RedisBroker) Publish(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.log.Error().Err(err).Msg("encode event")
		return
	}
	if err := b.rdb.Publish(ctx, redisEventsChannel, payload).Err(); err != nil {
		b.log.Warn().Err(err).Uint("user_id", ev.UserID).Msg("redis publish failed, delivering locally")
		b.local.Publish(ctx, ev)
	}
}

func (b *RedisBroker) Subscribe(userID uint, onChange func(Event)) func() {
	return b.local.Subscribe(userID, onChange)
}

// Run forwards Redis messages to local subscribers until ctx is done.
func (b *RedisBroker) Run(ctx context.Context) error {
	sub := b.rdb.Subscribe(ctx, redisEventsChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.relay(ctx, msg.Payload)
		}
	}
}

func (b *RedisBroker) relay(ctx context.Context, payload string) {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		b.log.Warn().Err(err).Msg("drop malformed event")
		return
	}
	b.local.Publish(ctx, ev)
}
