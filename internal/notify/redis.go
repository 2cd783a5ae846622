package notify

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "notify:user:"

const (
	minBackoff = time.Second
	maxBackoff = 30 * time.Second
)

// RedisBridge publishes notifications over Redis so every instance delivers
// them to its own local subscribers.
type RedisBridge struct {
	client *redis.Client
	hub    *Hub
	clock  clockwork.Clock
	log    *zap.Logger
}

func NewRedisBridge(client *redis.Client, hub *Hub, clock clockwork.Clock, log *zap.Logger) *RedisBridge {
	return &RedisBridge{client: client, hub: hub, clock: clock, log: log.Named("notify.redis")}
}

// Notify publishes n on the user's channel. When the publish fails the
// notification is still delivered to local subscribers.
func (b *RedisBridge) Notify(userID string, n Notification) {
	if n.Timestamp.IsZero() {
		n.Timestamp = b.clock.Now().UTC()
	}
	data, err := json.Marshal(n)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = b.client.Publish(ctx, channelPrefix+userID, data).Err()
		cancel()
	}
	if err != nil {
		b.log.Warn("publish failed, delivering locally", zap.String("user_id", userID), zap.Error(err))
		b.hub.Notify(userID, n)
	}
}

// Run feeds the local hub from Redis until ctx is done, resubscribing with
// exponential backoff after errors.
func (b *RedisBridge) Run(ctx context.Context) {
	backoff := minBackoff
	for ctx.Err() == nil {
		if b.receive(ctx) {
			backoff = minBackoff
		}
		select {
		case <-ctx.Done():
			return
		case <-b.clock.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

// receive runs one subscription and reports whether it delivered anything.
func (b *RedisBridge) receive(ctx context.Context) bool {
	pubsub := b.client.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	b.log.Info("notification subscriber started", zap.String("pattern", channelPrefix+"*"))
	delivered := false
	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() == nil {
				b.log.Warn("notification subscriber error", zap.Error(err))
			}
			return delivered
		}
		var n Notification
		if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
			b.log.Warn("malformed notification", zap.String("channel", msg.Channel), zap.Error(err))
			continue
		}
		b.hub.Notify(strings.TrimPrefix(msg.Channel, channelPrefix), n)
		delivered = true
	}
}

var _ Notifier = (*RedisBridge)(nil)
