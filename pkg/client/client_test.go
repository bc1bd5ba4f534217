package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/chatstream/pkg/models"
)

func newHub(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "chatstream-chatwatch/"))
		body, ok := routes[r.URL.RequestURI()]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"resource not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Interactions(t *testing.T) {
	srv := newHub(t, map[string]any{
		"/api/v1/interactions/int-1": models.Interaction{ID: "int-1", ChatSessionID: "s1", Answer: "final text", Completed: true},
		"/api/v1/sessions/s1/interactions": models.InteractionListResponse{
			Interactions: []*models.Interaction{{ID: "int-1"}, {ID: "int-2"}},
		},
		"/api/v1/sessions/s1/interactions?q=market+size": models.InteractionListResponse{
			Interactions: []*models.Interaction{{ID: "int-2"}},
		},
	})
	c := New(srv.URL+"/", srv.Client())
	ctx := context.Background()

	interaction, err := c.GetInteraction(ctx, "int-1")
	require.NoError(t, err)
	assert.True(t, interaction.Completed)

	answer, err := c.FinalAnswer(ctx, "int-1")
	require.NoError(t, err)
	assert.Equal(t, "final text", answer)

	all, err := c.ListInteractions(ctx, "s1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := c.ListInteractions(ctx, "s1", "market size")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "int-2", matched[0].ID)
}

func TestClient_Tabs(t *testing.T) {
	srv := newHub(t, map[string]any{
		"/api/v1/interactions/int-1/sources": models.SourceListResponse{
			Sources: []*models.Source{{ID: "src-1", URL: "https://example.com"}},
		},
		"/api/v1/sessions/s1/artifacts": models.ArtifactListResponse{
			Artifacts: []*models.Artifact{{ID: "a-1", ArtifactKey: "table"}},
		},
		"/api/v1/interactions/int-1/steps": models.StepListResponse{
			Steps: []*models.InteractionStep{{SequenceNumber: 1, Message: "Searching"}},
		},
		"/api/v1/interactions/int-1/queue": models.QueueStatus{
			InteractionID: "int-1", JobData: map[string]any{"position": float64(2)},
		},
	})
	c := New(srv.URL, srv.Client())
	ctx := context.Background()

	sources, err := c.ListSources(ctx, "int-1")
	require.NoError(t, err)
	assert.Equal(t, "src-1", sources[0].ID)

	artifacts, err := c.ListArtifacts(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "table", artifacts[0].ArtifactKey)

	steps, err := c.ListSteps(ctx, "int-1")
	require.NoError(t, err)
	assert.Equal(t, "Searching", steps[0].Message)

	queue, err := c.GetQueueStatus(ctx, "int-1")
	require.NoError(t, err)
	assert.Equal(t, float64(2), queue.JobData["position"])
}

func TestClient_NotFound(t *testing.T) {
	srv := newHub(t, nil)
	c := New(srv.URL, srv.Client())

	_, err := c.GetInteraction(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "resource not found", apiErr.Message)

	_, err = c.FinalAnswer(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeAPIError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL, srv.Client()).ListSteps(context.Background(), "x")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
	assert.NotErrorIs(t, err, ErrNotFound)
}
