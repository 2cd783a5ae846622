package notify

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_DeliversToUserOnly(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	h := NewHub(clock, zap.NewNop())

	a, cancelA := h.Subscribe("a")
	defer cancelA()
	b, cancelB := h.Subscribe("b")
	defer cancelB()

	h.Notify("a", Notification{Kind: KindSuccess, Title: "Journal entry saved"})

	select {
	case n := <-a:
		assert.Equal(t, "Journal entry saved", n.Title)
		assert.Equal(t, clock.Now(), n.Timestamp)
	default:
		t.Fatal("expected a notification")
	}
	assert.Empty(t, b)
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub(clockwork.NewFakeClock(), zap.NewNop())
	ch, cancel := h.Subscribe("a")
	defer cancel()

	for i := 0; i < subscriberBuffer*2; i++ {
		h.Notify("a", Notification{Title: "x"})
	}
	assert.Len(t, ch, subscriberBuffer)
}

func TestHub_CancelIsIdempotent(t *testing.T) {
	h := NewHub(clockwork.NewFakeClock(), zap.NewNop())
	ch, cancel := h.Subscribe("a")
	assert.Equal(t, 1, h.Subscribers("a"))

	cancel()
	cancel()
	assert.Equal(t, 0, h.Subscribers("a"))

	_, open := <-ch
	assert.False(t, open)

	// notifying with no subscribers is a no-op
	h.Notify("a", Notification{Title: "x"})
}

func TestRedisBridge_Integration(t *testing.T) {
	uri := os.Getenv("TEST_REDIS_URI")
	if uri == "" {
		t.Skip("TEST_REDIS_URI not set")
	}
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	clock := clockwork.NewRealClock()
	hub := NewHub(clock, zap.NewNop())
	bridge := NewRedisBridge(client, hub, clock, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx)

	ch, unsubscribe := hub.Subscribe("it-user")
	defer unsubscribe()

	require.Eventually(t, func() bool {
		bridge.Notify("it-user", Notification{Kind: KindInfo, Title: "ping"})
		select {
		case n := <-ch:
			return n.Title == "ping"
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)
}
