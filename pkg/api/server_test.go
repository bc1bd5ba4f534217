package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/chatstream/pkg/config"
	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/codeready-toolchain/chatstream/pkg/models"
	"github.com/codeready-toolchain/chatstream/pkg/services"
	"github.com/codeready-toolchain/chatstream/pkg/stream"
	testdb "github.com/codeready-toolchain/chatstream/test/database"
)

// recordingPublisher captures published payloads by event type.
type recordingPublisher struct {
	mu       sync.Mutex
	payloads map[string][]any
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{payloads: make(map[string][]any)}
}

func (p *recordingPublisher) record(eventType string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads[eventType] = append(p.payloads[eventType], payload)
	return nil
}

func (p *recordingPublisher) Of(eventType string) []any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]any(nil), p.payloads[eventType]...)
}

func (p *recordingPublisher) PublishStatusUpdate(_ context.Context, payload events.StatusUpdatePayload) error {
	return p.record(payload.Type, payload)
}

func (p *recordingPublisher) PublishInteractionUpdated(_ context.Context, payload events.InteractionUpdatedPayload) error {
	return p.record(payload.Type, payload)
}

func (p *recordingPublisher) PublishInteractionCompleted(_ context.Context, payload events.InteractionCompletedPayload) error {
	return p.record(payload.Type, payload)
}

func (p *recordingPublisher) PublishSourceCreated(_ context.Context, payload events.SourceCreatedPayload) error {
	return p.record(payload.Type, payload)
}

func (p *recordingPublisher) PublishArtifactCreated(_ context.Context, payload events.ArtifactCreatedPayload) error {
	return p.record(payload.Type, payload)
}

func (p *recordingPublisher) PublishInteractionCreated(_ context.Context, payload events.InteractionCreatedPayload) error {
	return p.record(payload.Type, payload)
}

func (p *recordingPublisher) PublishQueueStatus(_ context.Context, payload events.QueueStatusPayload) error {
	return p.record(payload.Type, payload)
}

type recordingPurger struct {
	mu  sync.Mutex
	ids []string
}

func (r *recordingPurger) ScheduleInteractionPurge(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

type apiTestEnv struct {
	server    *Server
	publisher *recordingPublisher
	purger    *recordingPurger
	http      *httptest.Server
}

func newAPITestEnv(t *testing.T, directStream *config.DirectStreamConfig) *apiTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	if directStream == nil {
		directStream = &config.DirectStreamConfig{PollInterval: 20 * time.Millisecond, MaxDuration: 10 * time.Second}
	}
	cfg := &config.Config{
		Streaming:    config.DefaultStreamingConfig(),
		DirectStream: directStream,
		Completion:   config.DefaultCompletionConfig(),
		Retention:    config.DefaultRetentionConfig(),
		Slack:        &config.SlackConfig{},
		DashboardURL: "http://localhost:5173",
	}

	connManager := events.NewConnectionManager(
		events.NewEventServiceAdapter(services.NewEventService(entClient)), 5*time.Second, 0)

	s := NewServer(cfg, dbClient,
		services.NewInteractionService(entClient),
		services.NewResourceService(entClient),
		services.NewStepService(entClient),
		services.NewQueueService(entClient),
		connManager)

	env := &apiTestEnv{
		server:    s,
		publisher: newRecordingPublisher(),
		purger:    &recordingPurger{},
	}
	s.SetEventPublisher(env.publisher)
	s.SetInteractionPurger(env.purger)

	env.http = httptest.NewServer(s.Handler())
	t.Cleanup(env.http.Close)
	return env
}

// do sends a JSON request and decodes a JSON response into out (when non-nil).
func (e *apiTestEnv) do(t *testing.T, method, path string, body, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, e.http.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.http.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (e *apiTestEnv) createInteraction(t *testing.T, sessionID, question string) *models.Interaction {
	t.Helper()
	var interaction models.Interaction
	code := e.do(t, http.MethodPost, "/api/v1/sessions/"+sessionID+"/interactions",
		CreateInteractionRequest{Question: question}, &interaction)
	require.Equal(t, http.StatusCreated, code)
	return &interaction
}

func strPtr(s string) *string { return &s }

func TestInteractionLifecycle(t *testing.T) {
	env := newAPITestEnv(t, nil)

	interaction := env.createInteraction(t, "sess-1", "Who are our top customers?")
	assert.Equal(t, "sess-1", interaction.ChatSessionID)
	assert.False(t, interaction.Completed)

	created := env.publisher.Of(events.EventTypeInteractionCreated)
	require.Len(t, created, 1)
	assert.Equal(t, interaction.ID, created[0].(events.InteractionCreatedPayload).InteractionID)

	var list models.InteractionListResponse
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/sessions/sess-1/interactions", nil, &list))
	require.Len(t, list.Interactions, 1)

	t.Run("partial answer is broadcast", func(t *testing.T) {
		var updated models.Interaction
		code := env.do(t, http.MethodPatch, "/api/v1/interactions/"+interaction.ID,
			models.UpdateInteractionRequest{Answer: strPtr("Acme")}, &updated)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Acme", updated.Answer)

		published := env.publisher.Of(events.EventTypeInteractionUpdated)
		require.Len(t, published, 1)
		fields := published[0].(events.InteractionUpdatedPayload).Fields
		assert.Equal(t, map[string]any{"answer": "Acme"}, fields)
	})

	t.Run("status update with create_event is kept as a step", func(t *testing.T) {
		var resp StatusUpdateResponse
		code := env.do(t, http.MethodPost, "/api/v1/interactions/"+interaction.ID+"/status",
			models.StatusUpdateRequest{Source: "searxng_search", Message: "Searching", CreateEvent: true}, &resp)
		require.Equal(t, http.StatusAccepted, code)
		assert.True(t, resp.Published)
		require.NotNil(t, resp.Step)
		assert.Equal(t, 1, resp.Step.SequenceNumber)

		code = env.do(t, http.MethodPost, "/api/v1/interactions/"+interaction.ID+"/status",
			models.StatusUpdateRequest{Source: "planner", Message: "thinking"}, &resp)
		require.Equal(t, http.StatusAccepted, code)
		assert.Nil(t, resp.Step)

		var steps models.StepListResponse
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/interactions/"+interaction.ID+"/steps", nil, &steps))
		require.Len(t, steps.Steps, 1)
		assert.Equal(t, "Searching", steps.Steps[0].Message)
		assert.Len(t, env.publisher.Of(events.EventTypeStatusUpdate), 2)
	})

	t.Run("complete transitions once", func(t *testing.T) {
		var resp models.CompleteInteractionResponse
		code := env.do(t, http.MethodPost, "/api/v1/interactions/"+interaction.ID+"/complete",
			models.CompleteInteractionRequest{ExecutionID: "exec-1"}, &resp)
		require.Equal(t, http.StatusOK, code)
		assert.True(t, resp.Transitioned)
		assert.True(t, resp.Interaction.Completed)

		code = env.do(t, http.MethodPost, "/api/v1/interactions/"+interaction.ID+"/complete", nil, &resp)
		require.Equal(t, http.StatusOK, code)
		assert.False(t, resp.Transitioned)

		completed := env.publisher.Of(events.EventTypeInteractionCompleted)
		require.Len(t, completed, 1)
		assert.Equal(t, "exec-1", completed[0].(events.InteractionCompletedPayload).ExecutionID)

		env.purger.mu.Lock()
		assert.Equal(t, []string{interaction.ID}, env.purger.ids)
		env.purger.mu.Unlock()
	})

	t.Run("completed interaction only accepts the final answer", func(t *testing.T) {
		code := env.do(t, http.MethodPatch, "/api/v1/interactions/"+interaction.ID,
			models.UpdateInteractionRequest{Answer: strPtr("late partial")}, nil)
		assert.Equal(t, http.StatusConflict, code)

		var updated models.Interaction
		code = env.do(t, http.MethodPatch, "/api/v1/interactions/"+interaction.ID,
			models.UpdateInteractionRequest{Answer: strPtr("Acme, Globex"), Final: true}, &updated)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Acme, Globex", updated.Answer)

		published := env.publisher.Of(events.EventTypeInteractionUpdated)
		last := published[len(published)-1].(events.InteractionUpdatedPayload)
		assert.Equal(t, true, last.Fields["final"])
	})

	t.Run("late status updates are still accepted", func(t *testing.T) {
		code := env.do(t, http.MethodPost, "/api/v1/interactions/"+interaction.ID+"/status",
			models.StatusUpdateRequest{Source: "agent_execution_completed", Message: "done"}, nil)
		assert.Equal(t, http.StatusAccepted, code)
	})
}

func TestCreateInteraction_Validation(t *testing.T) {
	env := newAPITestEnv(t, nil)

	code := env.do(t, http.MethodPost, "/api/v1/sessions/sess-1/interactions", CreateInteractionRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = env.do(t, http.MethodGet, "/api/v1/sessions/sess-1/interactions?q=a", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	assert.Empty(t, env.publisher.Of(events.EventTypeInteractionCreated))
}

func TestUnknownInteraction(t *testing.T) {
	env := newAPITestEnv(t, nil)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/interactions/missing", nil, nil))
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPost, "/api/v1/interactions/missing/status",
		models.StatusUpdateRequest{Message: "x"}, nil))
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPost, "/api/v1/interactions/missing/complete", nil, nil))
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/api/v1/interactions/missing/stream", nil, nil))
	assert.Empty(t, env.publisher.Of(events.EventTypeStatusUpdate))
}

func TestSourcesAndArtifacts(t *testing.T) {
	env := newAPITestEnv(t, nil)
	interaction := env.createInteraction(t, "sess-2", "Compare vendors")
	base := "/api/v1/interactions/" + interaction.ID

	var first, second SourceResponse
	src := models.CreateSourceRequest{URL: "https://www.example.com/report", Title: "Report"}
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, base+"/sources", src, &first))
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, base+"/sources", src, &second))
	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.Equal(t, first.Source.ID, second.Source.ID)
	assert.Equal(t, "example.com", first.Source.Domain)
	assert.Len(t, env.publisher.Of(events.EventTypeSourceCreated), 1)

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, base+"/sources",
		models.CreateSourceRequest{URL: "ftp://example.com"}, nil))

	var sources models.SourceListResponse
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, base+"/sources", nil, &sources))
	assert.Len(t, sources.Sources, 1)

	art := models.CreateArtifactRequest{ArtifactKey: "vendor-table", Title: "Vendors", ChatInteractionID: interaction.ID}
	var artResp ArtifactResponse
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/sessions/sess-2/artifacts", art, &artResp))
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/sessions/sess-2/artifacts", art, &artResp))
	assert.False(t, artResp.Created)

	published := env.publisher.Of(events.EventTypeArtifactCreated)
	require.Len(t, published, 1)
	payload := published[0].(events.ArtifactCreatedPayload)
	assert.Equal(t, "sess-2", payload.SessionID)
	assert.Equal(t, interaction.ID, payload.ChatInteractionID)

	var artifacts models.ArtifactListResponse
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/v1/sessions/sess-2/artifacts", nil, &artifacts))
	assert.Len(t, artifacts.Artifacts, 1)
}

func TestQueueStatus(t *testing.T) {
	env := newAPITestEnv(t, nil)
	interaction := env.createInteraction(t, "sess-3", "Queue me")
	path := "/api/v1/interactions/" + interaction.ID + "/queue"

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, path, nil, nil))

	var status models.QueueStatus
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, path,
		SetQueueStatusRequest{JobData: map[string]any{"position": 3}}, &status))
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPut, path,
		SetQueueStatusRequest{JobData: map[string]any{"state": "running"}}, &status))

	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, path, nil, &status))
	assert.Equal(t, map[string]any{"state": "running"}, status.JobData)
	assert.Len(t, env.publisher.Of(events.EventTypeQueueStatus), 2)

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPut, path, SetQueueStatusRequest{}, nil))
}

func TestHealth(t *testing.T) {
	env := newAPITestEnv(t, nil)

	var health HealthResponse
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/health", nil, &health))
	assert.Equal(t, healthStatusHealthy, health.Status)
	assert.NotEmpty(t, health.Version)
	require.NotNil(t, health.Database)
	assert.Equal(t, "healthy", health.Database.Status)
	assert.Equal(t, 0, health.WebSocketConnections)
}

func TestValidateWiring(t *testing.T) {
	env := newAPITestEnv(t, nil)
	assert.NoError(t, env.server.ValidateWiring())

	err := (&Server{}).ValidateWiring()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event publisher is not set")
	assert.Contains(t, err.Error(), "database client is not set")
}

func TestWSOriginPatterns(t *testing.T) {
	assert.Nil(t, wsOriginPatterns(nil))
	assert.Equal(t, []string{"chat.example.com:8443", "*.corp.example"},
		wsOriginPatterns(&config.Config{
			DashboardURL:     "https://chat.example.com:8443",
			AllowedWSOrigins: []string{"*.corp.example"},
		}))
}

// answerRecorder is a stream.DirectHandler that signals every answer.
type answerRecorder struct {
	answers  chan string
	complete chan struct{}
	errors   chan string
}

func newAnswerRecorder() *answerRecorder {
	return &answerRecorder{
		answers:  make(chan string, 16),
		complete: make(chan struct{}, 1),
		errors:   make(chan string, 1),
	}
}

func (r *answerRecorder) OnAnswer(content string) { r.answers <- content }
func (r *answerRecorder) OnComplete()             { r.complete <- struct{}{} }
func (r *answerRecorder) OnError(message string)  { r.errors <- message }

func TestStreamInteraction(t *testing.T) {
	env := newAPITestEnv(t, nil)
	interaction := env.createInteraction(t, "sess-4", "Summarize the market")
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPatch, "/api/v1/interactions/"+interaction.ID,
		models.UpdateInteractionRequest{Answer: strPtr("The market")}, nil))

	client := stream.NewDirectClient(env.http.URL, env.http.Client())
	rec := newAnswerRecorder()

	type outcome struct {
		result stream.DirectResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := client.Stream(context.Background(), interaction.ID, rec)
		done <- outcome{res, err}
	}()

	select {
	case a := <-rec.answers:
		assert.Equal(t, "The market", a)
	case <-time.After(5 * time.Second):
		t.Fatal("no initial answer frame")
	}

	require.Equal(t, http.StatusOK, env.do(t, http.MethodPatch, "/api/v1/interactions/"+interaction.ID,
		models.UpdateInteractionRequest{Answer: strPtr("The market grew 12%.")}, nil))
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/interactions/"+interaction.ID+"/complete", nil, nil))

	select {
	case out := <-done:
		require.NoError(t, out.err)
		assert.Equal(t, stream.DirectCompleted, out.result.State)
		assert.Equal(t, "The market grew 12%.", out.result.Answer)
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not complete")
	}
	assert.Len(t, rec.complete, 1)
}

func TestStreamInteraction_AlreadyCompleted(t *testing.T) {
	env := newAPITestEnv(t, nil)
	interaction := env.createInteraction(t, "sess-5", "Quick one")
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPatch, "/api/v1/interactions/"+interaction.ID,
		models.UpdateInteractionRequest{Answer: strPtr("42")}, nil))
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/interactions/"+interaction.ID+"/complete", nil, nil))

	res, err := stream.NewDirectClient(env.http.URL, env.http.Client()).
		Stream(context.Background(), interaction.ID, newAnswerRecorder())
	require.NoError(t, err)
	assert.Equal(t, "42", res.Answer)
	assert.Equal(t, 1, res.Frames)
}

func TestStreamInteraction_MaxDuration(t *testing.T) {
	env := newAPITestEnv(t, &config.DirectStreamConfig{
		PollInterval: 10 * time.Millisecond,
		MaxDuration:  100 * time.Millisecond,
	})
	interaction := env.createInteraction(t, "sess-6", "Never finishes")

	res, err := stream.NewDirectClient(env.http.URL, env.http.Client()).
		Stream(context.Background(), interaction.ID, newAnswerRecorder())
	require.ErrorIs(t, err, stream.ErrDirectStream)
	assert.Equal(t, stream.DirectErrored, res.State)
	assert.Contains(t, res.Error, "maximum duration")
}
