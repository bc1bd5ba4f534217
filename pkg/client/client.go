// Package client is a small HTTP client for the hub's REST API, used by
// chatwatch to seed views and to re-query tabs after a refresh signal.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeready-toolchain/chatstream/pkg/models"
	"github.com/codeready-toolchain/chatstream/pkg/version"
)

// DefaultTimeout bounds every REST call. The direct stream does not use this
// client.
const DefaultTimeout = 10 * time.Second

// ErrNotFound is returned when the hub answers 404.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the hub.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hub returned %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps 404 to ErrNotFound.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// Client wraps HTTP calls to the hub.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a client for the hub at baseURL. A nil httpClient gets one
// with DefaultTimeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  version.UserAgent("chatwatch"),
		httpClient: httpClient,
	}
}

// BaseURL returns the hub address without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// HTTPClient returns the underlying client, for sharing with stream.DirectClient.
func (c *Client) HTTPClient() *http.Client { return c.httpClient }

// GetInteraction fetches one interaction.
func (c *Client) GetInteraction(ctx context.Context, interactionID string) (*models.Interaction, error) {
	var out models.Interaction
	if err := c.get(ctx, "/api/v1/interactions/"+url.PathEscape(interactionID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInteractions lists a session's interactions. query, when non-empty,
// is passed as the full-text filter.
func (c *Client) ListInteractions(ctx context.Context, sessionID, query string) ([]*models.Interaction, error) {
	path := "/api/v1/sessions/" + url.PathEscape(sessionID) + "/interactions"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}
	var out models.InteractionListResponse
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Interactions, nil
}

// ListSources fetches the sources of an interaction.
func (c *Client) ListSources(ctx context.Context, interactionID string) ([]*models.Source, error) {
	var out models.SourceListResponse
	if err := c.get(ctx, "/api/v1/interactions/"+url.PathEscape(interactionID)+"/sources", &out); err != nil {
		return nil, err
	}
	return out.Sources, nil
}

// ListArtifacts fetches the artifacts of a session.
func (c *Client) ListArtifacts(ctx context.Context, sessionID string) ([]*models.Artifact, error) {
	var out models.ArtifactListResponse
	if err := c.get(ctx, "/api/v1/sessions/"+url.PathEscape(sessionID)+"/artifacts", &out); err != nil {
		return nil, err
	}
	return out.Artifacts, nil
}

// ListSteps fetches the persisted steps of an interaction.
func (c *Client) ListSteps(ctx context.Context, interactionID string) ([]*models.InteractionStep, error) {
	var out models.StepListResponse
	if err := c.get(ctx, "/api/v1/interactions/"+url.PathEscape(interactionID)+"/steps", &out); err != nil {
		return nil, err
	}
	return out.Steps, nil
}

// GetQueueStatus fetches the latest queue snapshot. An interaction that was
// never queued returns ErrNotFound.
func (c *Client) GetQueueStatus(ctx context.Context, interactionID string) (*models.QueueStatus, error) {
	var out models.QueueStatus
	if err := c.get(ctx, "/api/v1/interactions/"+url.PathEscape(interactionID)+"/queue", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FinalAnswer returns the stored answer of an interaction. It satisfies
// stream.AnswerFetcher.
func (c *Client) FinalAnswer(ctx context.Context, interactionID string) (string, error) {
	interaction, err := c.GetInteraction(ctx, interactionID)
	if err != nil {
		return "", err
	}
	return interaction.Answer, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// decodeAPIError reads echo's {"message": "..."} error body, falling back to
// the raw text.
func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
