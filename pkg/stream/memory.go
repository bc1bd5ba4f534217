package stream

import (
	"context"
	"maps"
	"sort"
	"sync"
)

// MemoryTransport is an in-process Transport. Publish delivers synchronously
// to every current subscriber of the channel, in subscription order.
type MemoryTransport struct {
	mu     sync.RWMutex
	subs   map[string]map[int]Handler
	nextID int
}

// NewMemoryTransport creates an empty MemoryTransport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{subs: make(map[string]map[int]Handler)}
}

// Subscribe registers handler for channel.
func (t *MemoryTransport) Subscribe(ctx context.Context, channel string, handler Handler) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	if t.subs[channel] == nil {
		t.subs[channel] = make(map[int]Handler)
	}
	t.subs[channel][t.nextID] = handler
	return &memorySubscription{t: t, channel: channel, id: t.nextID}, nil
}

// Publish delivers payload on channel. The payload map is shared with
// every handler; handlers must not modify it.
func (t *MemoryTransport) Publish(channel string, payload map[string]any) {
	t.mu.RLock()
	handlers := maps.Clone(t.subs[channel])
	t.mu.RUnlock()

	ids := make([]int, 0, len(handlers))
	for id := range handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		handlers[id](RawEvent{Channel: channel, Payload: payload})
	}
}

// Subscribers returns the number of open subscriptions on channel.
func (t *MemoryTransport) Subscribers(channel string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.subs[channel])
}

// Channels returns the channels with at least one subscriber, sorted.
func (t *MemoryTransport) Channels() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.subs))
	for ch := range t.subs {
		out = append(out, ch)
	}
	sort.Strings(out)
	return out
}

type memorySubscription struct {
	t       *MemoryTransport
	channel string
	id      int
	once    sync.Once
}

func (s *memorySubscription) Close() error {
	s.once.Do(func() {
		s.t.mu.Lock()
		defer s.t.mu.Unlock()
		delete(s.t.subs[s.channel], s.id)
		if len(s.t.subs[s.channel]) == 0 {
			delete(s.t.subs, s.channel)
		}
	})
	return nil
}
