package stream

import (
	"context"
	"errors"
)

// ErrTransportUnavailable is returned when the broadcast hub cannot be
// reached. Live views degrade to stale data when they see it.
var ErrTransportUnavailable = errors.New("stream transport unavailable")

// Handler receives the events of one channel, in arrival order.
type Handler func(RawEvent)

// Transport opens channel subscriptions.
type Transport interface {
	Subscribe(ctx context.Context, channel string, handler Handler) (Subscription, error)
}

// Subscription is an open channel subscription. Close is idempotent.
type Subscription interface {
	Close() error
}

// Unavailable returns a Transport whose every Subscribe fails with
// ErrTransportUnavailable.
func Unavailable() Transport {
	return unavailableTransport{}
}

type unavailableTransport struct{}

func (unavailableTransport) Subscribe(context.Context, string, Handler) (Subscription, error) {
	return nil, ErrTransportUnavailable
}
