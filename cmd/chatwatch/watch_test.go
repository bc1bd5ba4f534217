package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/chatstream/pkg/models"
	"github.com/codeready-toolchain/chatstream/pkg/stream"
)

// testHub serves the REST and direct-stream endpoints of one interaction.
// It has no /ws endpoint, so live channels are never available.
type testHub struct {
	server        *httptest.Server
	streamed      atomic.Int32
	artifactCalls atomic.Int32
}

func newTestHub(t *testing.T) *testHub {
	t.Helper()
	h := &testHub{}
	interaction := &models.Interaction{
		ID:            "i-1",
		ChatSessionID: "s-1",
		Question:      "What changed in Go 1.25?",
		Answer:        "Stored answer",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/interactions/i-1", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, interaction)
	})
	mux.HandleFunc("GET /api/v1/interactions/i-1/sources", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []*models.Source{})
	})
	mux.HandleFunc("GET /api/v1/interactions/i-1/steps", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, []*models.InteractionStep{})
	})
	mux.HandleFunc("GET /api/v1/sessions/s-1/artifacts", func(w http.ResponseWriter, _ *http.Request) {
		h.artifactCalls.Add(1)
		writeJSON(w, []*models.Artifact{})
	})
	mux.HandleFunc("GET /api/v1/interactions/i-1/stream", func(w http.ResponseWriter, _ *http.Request) {
		h.streamed.Add(1)
		w.Header().Set("Content-Type", "text/event-stream")
		frame, _ := json.Marshal(stream.Frame{Type: stream.FrameAnswerStream, Content: "Partial answer"})
		_, _ = fmt.Fprintf(w, "data: %s\n\n", frame)
		_, _ = fmt.Fprintf(w, "data: %s\n\n", stream.StreamSentinel)
	})
	h.server = httptest.NewServer(mux)
	t.Cleanup(h.server.Close)
	return h
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// useHub points the package-level flags at h for the duration of the test.
func useHub(t *testing.T, h *testHub) {
	t.Helper()
	prevHub, prevJournal, prevSession := hubAddr, journalPath, watchSession
	hubAddr, journalPath, watchSession = h.server.URL, "", ""
	t.Cleanup(func() {
		hubAddr, journalPath, watchSession = prevHub, prevJournal, prevSession
	})
}

func TestRunWatch_FallsBackToDirectStream(t *testing.T) {
	hub := newTestHub(t)
	useHub(t, hub)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)

	require.NoError(t, runWatch(cmd, []string{"i-1"}))
	require.NoError(t, ctx.Err(), "watch should end on completion, not on timeout")
	assert.Equal(t, int32(1), hub.streamed.Load())
	assert.Positive(t, hub.artifactCalls.Load(), "final flush refreshes artifacts")
}

func TestLiveView_AwaitFinishedClosesAfterArtifactsRefresh(t *testing.T) {
	hub := newTestHub(t)
	useHub(t, hub)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	v, err := newLiveView(ctx, true)
	require.NoError(t, err)
	defer v.close()

	done := v.awaitFinished("i-1")
	assert.Equal(t, done, v.awaitFinished("i-1"), "waiters share one channel")
	v.run(ctx)

	// An artifacts refresh before completion does not finish the view.
	v.refresh(ctx, stream.TabArtifacts, "i-1")
	select {
	case <-done:
		t.Fatal("finished before completion")
	default:
	}

	require.Empty(t, v.watcher.Subscriptions())
	result, err := v.watcher.StreamDirect(ctx, "i-1")
	require.NoError(t, err)
	assert.Equal(t, stream.DirectCompleted, result.State)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("not finished after the post-completion artifacts refresh")
	}
	assert.True(t, v.watcher.IsCompleted("i-1"))
}
