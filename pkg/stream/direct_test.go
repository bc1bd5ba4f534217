package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDirectHandler struct {
	answers   []string
	completes int
	errors    []string
}

func (h *recordingDirectHandler) OnAnswer(content string) { h.answers = append(h.answers, content) }
func (h *recordingDirectHandler) OnComplete()             { h.completes++ }
func (h *recordingDirectHandler) OnError(message string)  { h.errors = append(h.errors, message) }

func newStreamServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/interactions/42/stream", r.URL.Path)
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDirectClient_AnswerReplaceSemantics(t *testing.T) {
	body := strings.Join([]string{
		`data: {"type":"answer_stream","content":"Hi"}`,
		``,
		`data: {"type":"answer_stream","content":"Hi there"}`,
		``,
		`data: </stream>`,
		``,
	}, "\n")
	srv := newStreamServer(t, http.StatusOK, body)

	h := &recordingDirectHandler{}
	res, err := NewDirectClient(srv.URL, nil).Stream(context.Background(), "42", h)
	require.NoError(t, err)

	assert.Equal(t, DirectCompleted, res.State)
	assert.Equal(t, "Hi there", res.Answer)
	assert.Equal(t, 2, res.Frames)
	assert.Equal(t, []string{"Hi", "Hi there"}, h.answers)
	assert.Equal(t, 1, h.completes)
	assert.Empty(t, h.errors)
}

func TestDirectClient_SentinelStopsProcessing(t *testing.T) {
	body := strings.Join([]string{
		`{"type":"answer_stream","content":"Done"}`,
		`</stream>`,
		`{"type":"answer_stream","content":"ignored"}`,
		`not even json`,
	}, "\n")
	srv := newStreamServer(t, http.StatusOK, body)

	h := &recordingDirectHandler{}
	res, err := NewDirectClient(srv.URL, nil).Stream(context.Background(), "42", h)
	require.NoError(t, err)
	assert.Equal(t, "Done", res.Answer)
	assert.Equal(t, []string{"Done"}, h.answers)
	assert.Equal(t, 1, h.completes)
}

func TestDirectClient_SkipsCommentsAndUnknownFrames(t *testing.T) {
	body := strings.Join([]string{
		`: keepalive`,
		`event: message`,
		`id: 3`,
		`data: {"type":"research_step","content":"Searching"}`,
		`data: {"type":"shiny_new_frame"}`,
		`data: {"type":"answer_stream","content":"A"}`,
		`data: </stream>`,
	}, "\n")
	srv := newStreamServer(t, http.StatusOK, body)

	h := &recordingDirectHandler{}
	res, err := NewDirectClient(srv.URL, nil).Stream(context.Background(), "42", h)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, h.answers)
	assert.Equal(t, 3, res.Frames)
}

func TestDirectClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "error frame with message",
			status:  http.StatusOK,
			body:    "data: {\"type\":\"answer_stream\",\"content\":\"part\"}\ndata: {\"type\":\"error\",\"message\":\"model overloaded\"}\n",
			wantErr: "model overloaded",
		},
		{
			name:    "error frame with content",
			status:  http.StatusOK,
			body:    "data: {\"type\":\"error\",\"content\":\"quota exceeded\"}\n",
			wantErr: "quota exceeded",
		},
		{
			name:    "malformed frame",
			status:  http.StatusOK,
			body:    "data: {not json\n",
			wantErr: "malformed frame",
		},
		{
			name:    "eof without sentinel",
			status:  http.StatusOK,
			body:    "data: {\"type\":\"answer_stream\",\"content\":\"part\"}\n",
			wantErr: "stream ended before completion",
		},
		{
			name:    "non-200",
			status:  http.StatusNotFound,
			body:    `{"message":"interaction not found"}`,
			wantErr: "unexpected status 404",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newStreamServer(t, tt.status, tt.body)
			h := &recordingDirectHandler{}

			res, err := NewDirectClient(srv.URL, nil).Stream(context.Background(), "42", h)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDirectStream)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, DirectErrored, res.State)
			assert.Contains(t, res.Answer, tt.wantErr, "error text is surfaced as the answer")
			require.Len(t, h.errors, 1)
			assert.Zero(t, h.completes)
		})
	}
}

func TestDirectClient_Unreachable(t *testing.T) {
	h := &recordingDirectHandler{}
	res, err := NewDirectClient("http://127.0.0.1:1", nil).Stream(context.Background(), "42", h)
	require.Error(t, err)
	assert.Equal(t, DirectErrored, res.State)
	assert.Len(t, h.errors, 1)
}

func TestDirectState_String(t *testing.T) {
	assert.Equal(t, "connecting", DirectConnecting.String())
	assert.Equal(t, "streaming", DirectStreaming.String())
	assert.Equal(t, "completed", DirectCompleted.String())
	assert.Equal(t, "errored", DirectErrored.String())
}
