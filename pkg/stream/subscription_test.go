package stream

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingTransport fails Subscribe for the listed channels.
type failingTransport struct {
	*MemoryTransport
	fail map[string]bool
}

func (f *failingTransport) Subscribe(ctx context.Context, channel string, h Handler) (Subscription, error) {
	if f.fail[channel] {
		return nil, errors.New("boom")
	}
	return f.MemoryTransport.Subscribe(ctx, channel, h)
}

func channelsOf(keys []SubKey) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Channel())
	}
	return out
}

func TestSubscriptionManager_AttachToInteraction(t *testing.T) {
	tr := NewMemoryTransport()
	m := NewSubscriptionManager(tr, func(RawEvent) {})
	ctx := context.Background()

	m.AttachToInteraction(ctx, "42", "s1")
	want := []string{
		"interaction.42",
		"interaction.42.queue",
		"interaction.42.sources",
		"interaction.42.status",
		"session.s1.artifacts",
	}
	assert.Equal(t, want, channelsOf(m.Active()))
	assert.Equal(t, want, tr.Channels())
}

func TestSubscriptionManager_AttachIsIdempotent(t *testing.T) {
	tr := NewMemoryTransport()
	m := NewSubscriptionManager(tr, func(RawEvent) {})
	ctx := context.Background()

	m.AttachToInteraction(ctx, "42", "s1")
	m.AttachToInteraction(ctx, "42", "s1")

	for _, ch := range tr.Channels() {
		assert.Equal(t, 1, tr.Subscribers(ch), "channel %s", ch)
	}
	assert.Len(t, m.Active(), 5)
}

func TestSubscriptionManager_SwitchReleasesPrevious(t *testing.T) {
	tr := NewMemoryTransport()
	m := NewSubscriptionManager(tr, func(RawEvent) {})
	ctx := context.Background()

	m.AttachToSession(ctx, "s1")
	m.AttachToInteraction(ctx, "42", "s1")
	m.AttachToInteraction(ctx, "43", "s1")

	assert.Equal(t, []string{
		"interaction.43",
		"interaction.43.queue",
		"interaction.43.sources",
		"interaction.43.status",
		"session.s1",
		"session.s1.artifacts",
	}, tr.Channels())
	assert.Equal(t, 1, tr.Subscribers("session.s1.artifacts"), "shared session key is kept, not reopened")

	m.AttachToSession(ctx, "s2")
	assert.Zero(t, tr.Subscribers("session.s1"))
	assert.Equal(t, 1, tr.Subscribers("session.s2"))
}

func TestSubscriptionManager_DeliversToHandler(t *testing.T) {
	tr := NewMemoryTransport()
	var got []RawEvent
	m := NewSubscriptionManager(tr, func(raw RawEvent) { got = append(got, raw) })

	m.AttachToInteraction(context.Background(), "42", "")
	tr.Publish("interaction.42.status", map[string]any{"message": "hi"})
	require.Len(t, got, 1)
	assert.Equal(t, "interaction.42.status", got[0].Channel)
}

func TestSubscriptionManager_TransportFailureIsNotFatal(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		m := NewSubscriptionManager(Unavailable(), func(RawEvent) {})
		assert.NotPanics(t, func() {
			m.AttachToInteraction(context.Background(), "42", "s1")
			m.AttachToSession(context.Background(), "s1")
		})
		assert.Empty(t, m.Active())
	})

	t.Run("nil transport", func(t *testing.T) {
		m := NewSubscriptionManager(nil, func(RawEvent) {})
		m.AttachToInteraction(context.Background(), "42", "s1")
		assert.Empty(t, m.Active())
	})

	t.Run("partial failure then retry", func(t *testing.T) {
		tr := &failingTransport{MemoryTransport: NewMemoryTransport(), fail: map[string]bool{"interaction.42.sources": true}}
		m := NewSubscriptionManager(tr, func(RawEvent) {})

		m.AttachToInteraction(context.Background(), "42", "s1")
		assert.Len(t, m.Active(), 4)

		delete(tr.fail, "interaction.42.sources")
		m.AttachToInteraction(context.Background(), "42", "s1")
		assert.Len(t, m.Active(), 5)
	})
}

func TestSubscriptionManager_Close(t *testing.T) {
	tr := NewMemoryTransport()
	m := NewSubscriptionManager(tr, func(RawEvent) {})
	m.AttachToSession(context.Background(), "s1")
	m.AttachToInteraction(context.Background(), "42", "s1")

	m.Close()
	assert.Empty(t, m.Active())
	assert.Empty(t, tr.Channels())
}
