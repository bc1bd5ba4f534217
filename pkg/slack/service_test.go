package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlackAPI records chat.postMessage calls and serves a fixed channel
// history.
type fakeSlackAPI struct {
	mu      sync.Mutex
	posts   []map[string]string
	history []map[string]string
}

func newFakeSlackAPI(t *testing.T, history ...map[string]string) (*fakeSlackAPI, *httptest.Server) {
	t.Helper()
	api := &fakeSlackAPI{history: history}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/chat.postMessage":
			api.mu.Lock()
			api.posts = append(api.posts, map[string]string{
				"channel":   r.Form.Get("channel"),
				"thread_ts": r.Form.Get("thread_ts"),
				"blocks":    r.Form.Get("blocks"),
				"text":      r.Form.Get("text"),
			})
			api.mu.Unlock()
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "channel": r.Form.Get("channel"), "ts": "999.000"})
		case "/conversations.history":
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "messages": api.history})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "unknown_method"})
		}
	}))
	t.Cleanup(srv.Close)
	return api, srv
}

func (f *fakeSlackAPI) Posts() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]string(nil), f.posts...)
}

func newTestService(srv *httptest.Server) *Service {
	return NewServiceWithClient(NewClientWithAPIURL("xoxb-test", "C123", srv.URL+"/"), "https://dash.example.com")
}

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	assert.NotPanics(t, func() {
		s.NotifyInteractionStarted(context.Background(), InteractionStartedInput{InteractionID: "i-1", Trigger: "hi"})
		s.NotifyInteractionCompleted(context.Background(), InteractionCompletedInput{InteractionID: "i-1"})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		assert.Nil(t, NewService(ServiceConfig{Token: "", Channel: "C123"}))
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-test", Channel: ""}))
	})

	t.Run("returns service when configured", func(t *testing.T) {
		assert.NotNil(t, NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		}))
	})
}

func TestService_NotifyInteractionCompleted(t *testing.T) {
	api, srv := newFakeSlackAPI(t)
	svc := newTestService(srv)

	svc.NotifyInteractionCompleted(context.Background(), InteractionCompletedInput{
		InteractionID: "int-7",
		SessionID:     "sess-3",
		Question:      "Which regions saw the largest growth?",
		Answer:        "EMEA grew fastest.",
	})

	posts := api.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "C123", posts[0]["channel"])
	assert.Empty(t, posts[0]["thread_ts"])
	assert.Contains(t, posts[0]["blocks"], "EMEA grew fastest.")
	assert.Contains(t, posts[0]["blocks"], "https://dash.example.com/sessions/sess-3?interaction=int-7")
	assert.Contains(t, posts[0]["text"], "Which regions saw the largest growth?")
}

func TestService_NotifyInteractionCompleted_Threaded(t *testing.T) {
	api, srv := newFakeSlackAPI(t,
		map[string]string{"type": "message", "text": "unrelated", "ts": "100.000"},
		map[string]string{"type": "message", "text": "  What is   our churn rate? ", "ts": "200.000"},
	)
	svc := newTestService(srv)

	svc.NotifyInteractionCompleted(context.Background(), InteractionCompletedInput{
		InteractionID: "int-8",
		SessionID:     "sess-3",
		Question:      "What is our churn rate?",
		Answer:        "4%",
		Trigger:       "what is our CHURN rate?",
	})

	posts := api.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "200.000", posts[0]["thread_ts"])
}

func TestService_NotifyInteractionStarted(t *testing.T) {
	t.Run("skipped without trigger", func(t *testing.T) {
		api, srv := newFakeSlackAPI(t)
		newTestService(srv).NotifyInteractionStarted(context.Background(), InteractionStartedInput{
			InteractionID: "int-1",
			SessionID:     "sess-1",
			Question:      "q",
		})
		assert.Empty(t, api.Posts())
	})

	t.Run("skipped when thread not found", func(t *testing.T) {
		api, srv := newFakeSlackAPI(t)
		newTestService(srv).NotifyInteractionStarted(context.Background(), InteractionStartedInput{
			InteractionID: "int-1",
			SessionID:     "sess-1",
			Question:      "q",
			Trigger:       "never posted",
		})
		assert.Empty(t, api.Posts())
	})

	t.Run("replies in thread", func(t *testing.T) {
		api, srv := newFakeSlackAPI(t, map[string]string{"type": "message", "text": "summarize Q3", "ts": "300.000"})
		newTestService(srv).NotifyInteractionStarted(context.Background(), InteractionStartedInput{
			InteractionID: "int-2",
			SessionID:     "sess-1",
			Question:      "summarize Q3",
			Trigger:       "Summarize Q3",
		})
		posts := api.Posts()
		require.Len(t, posts, 1)
		assert.Equal(t, "300.000", posts[0]["thread_ts"])
		assert.Contains(t, posts[0]["blocks"], "Researching")
	})
}
