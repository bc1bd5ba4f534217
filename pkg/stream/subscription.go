package stream

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// SubKey identifies one subscription. There is at most one per key.
type SubKey struct {
	Kind    ChannelKind
	ScopeID string
}

// Channel returns the broadcast channel the key subscribes to.
func (k SubKey) Channel() string {
	return ChannelName(k.Kind, k.ScopeID)
}

// interactionKeys is the set of subscriptions that make up a live view of one
// interaction. Artifacts are keyed by the session.
func interactionKeys(interactionID, sessionID string) []SubKey {
	keys := []SubKey{
		{Kind: ChannelStatus, ScopeID: interactionID},
		{Kind: ChannelInteraction, ScopeID: interactionID},
		{Kind: ChannelSources, ScopeID: interactionID},
		{Kind: ChannelQueue, ScopeID: interactionID},
	}
	if sessionID != "" {
		keys = append(keys, SubKey{Kind: ChannelArtifacts, ScopeID: sessionID})
	}
	return keys
}

// SubscriptionManager owns the channel subscriptions of one view. Attaching
// a new interaction or session releases the subscriptions of the previous
// one. Transport failures are logged and never returned: a view without
// live updates is stale, not broken.
type SubscriptionManager struct {
	transport Transport
	handler   Handler

	mu              sync.Mutex
	subs            map[SubKey]Subscription
	interactionSubs map[SubKey]bool
	sessionKey      *SubKey
}

// NewSubscriptionManager creates a manager delivering every channel's events
// to handler.
func NewSubscriptionManager(transport Transport, handler Handler) *SubscriptionManager {
	if transport == nil {
		transport = Unavailable()
	}
	return &SubscriptionManager{
		transport:       transport,
		handler:         handler,
		subs:            make(map[SubKey]Subscription),
		interactionSubs: make(map[SubKey]bool),
	}
}

// AttachToInteraction opens the interaction-scope subscriptions. Calling it
// again for the same interaction is a no-op apart from retrying keys whose
// earlier subscribe failed.
func (m *SubscriptionManager) AttachToInteraction(ctx context.Context, interactionID, sessionID string) {
	if interactionID == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	want := make(map[SubKey]bool)
	for _, k := range interactionKeys(interactionID, sessionID) {
		want[k] = true
	}
	for k := range m.interactionSubs {
		if !want[k] {
			m.releaseLocked(k)
			delete(m.interactionSubs, k)
		}
	}
	for _, k := range interactionKeys(interactionID, sessionID) {
		if m.openLocked(ctx, k) {
			m.interactionSubs[k] = true
		}
	}
}

// AttachToSession opens the session discovery channel, releasing the
// previous session's.
func (m *SubscriptionManager) AttachToSession(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	key := SubKey{Kind: ChannelSession, ScopeID: sessionID}
	if m.sessionKey != nil && *m.sessionKey != key {
		m.releaseLocked(*m.sessionKey)
		m.sessionKey = nil
	}
	if m.openLocked(ctx, key) {
		m.sessionKey = &key
	}
}

// Active returns the open subscription keys, sorted by channel name.
func (m *SubscriptionManager) Active() []SubKey {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]SubKey, 0, len(m.subs))
	for k := range m.subs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Channel() < keys[j].Channel() })
	return keys
}

// Close releases every subscription.
func (m *SubscriptionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.subs {
		m.releaseLocked(k)
	}
	m.interactionSubs = make(map[SubKey]bool)
	m.sessionKey = nil
}

// openLocked subscribes k unless it is already open. Returns whether k is
// open afterwards.
func (m *SubscriptionManager) openLocked(ctx context.Context, k SubKey) bool {
	if _, ok := m.subs[k]; ok {
		return true
	}
	sub, err := m.transport.Subscribe(ctx, k.Channel(), m.handler)
	if err != nil {
		slog.Warn("Subscribe failed, view will not update live",
			"channel", k.Channel(), "error", err)
		return false
	}
	m.subs[k] = sub
	slog.Debug("Subscribed", "channel", k.Channel())
	return true
}

func (m *SubscriptionManager) releaseLocked(k SubKey) {
	sub, ok := m.subs[k]
	if !ok {
		return
	}
	delete(m.subs, k)
	if err := sub.Close(); err != nil {
		slog.Warn("Failed to close subscription", "channel", k.Channel(), "error", err)
	}
}
