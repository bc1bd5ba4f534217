package stream

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/stretchr/testify/assert"
)

func completedEvent(id string) Event {
	return Event{Kind: KindInteractionCompleted, InteractionID: id, Source: events.SourceInteractionCompleted}
}

func markerStatus(id string) Event {
	return Event{Kind: KindStatus, InteractionID: id, Source: events.SourceAgentExecutionCompleted}
}

func TestCompletionDetector_FiresOnceInEitherOrder(t *testing.T) {
	orders := map[string][]Event{
		"status first":    {markerStatus("42"), completedEvent("42")},
		"completed first": {completedEvent("42"), markerStatus("42")},
	}
	for name, seq := range orders {
		t.Run(name, func(t *testing.T) {
			var calls int
			d := NewCompletionDetector(nil, func(_ context.Context, id string, _ Event) {
				calls++
				assert.Equal(t, "42", id)
			})
			assert.True(t, d.Observe(context.Background(), seq[0]))
			assert.False(t, d.Observe(context.Background(), seq[1]))
			assert.Equal(t, 1, calls)
			assert.True(t, d.IsCompleted("42"))
		})
	}
}

func TestCompletionDetector_IgnoresNonMarkers(t *testing.T) {
	d := NewCompletionDetector(nil, nil)
	assert.False(t, d.Observe(context.Background(), Event{Kind: KindStatus, InteractionID: "42", Source: "searxng_search"}))
	assert.False(t, d.Observe(context.Background(), Event{Kind: KindSourceCreated, InteractionID: "42", Source: events.SourceExecutionCompleted}))
	assert.False(t, d.Observe(context.Background(), Event{Kind: KindStatus, Source: events.SourceExecutionCompleted}))
	assert.False(t, d.IsCompleted("42"))
}

func TestCompletionDetector_CustomSources(t *testing.T) {
	d := NewCompletionDetector([]string{"done"}, nil)
	assert.False(t, d.Observe(context.Background(), markerStatus("1")))
	assert.True(t, d.Observe(context.Background(), Event{Kind: KindStatus, InteractionID: "1", Source: "done"}))
	// interaction.completed is always a marker.
	assert.True(t, d.Observe(context.Background(), completedEvent("2")))
}

func TestCompletionDetector_MarkCompletedSkipsFinalize(t *testing.T) {
	var calls int
	d := NewCompletionDetector(nil, func(context.Context, string, Event) { calls++ })
	assert.True(t, d.MarkCompleted("42"))
	assert.False(t, d.Observe(context.Background(), completedEvent("42")))
	assert.Equal(t, 0, calls)
}

func TestCompletionDetector_Concurrent(t *testing.T) {
	var calls atomic.Int32
	d := NewCompletionDetector(nil, func(context.Context, string, Event) { calls.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				d.Observe(context.Background(), completedEvent("42"))
			} else {
				d.Observe(context.Background(), markerStatus("42"))
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}
