package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Direct-stream wire vocabulary, shared with the hub's producer.
const (
	FrameAnswerStream = "answer_stream"
	FrameError        = "error"
	FrameResearchStep = "research_step"

	// StreamSentinel is the line that ends a direct stream.
	StreamSentinel = "</stream>"
)

// ErrDirectStream is wrapped by every error Stream returns.
var ErrDirectStream = errors.New("direct stream failed")

// DirectState is the state of one direct-stream request.
type DirectState int

const (
	DirectConnecting DirectState = iota
	DirectStreaming
	DirectCompleted
	DirectErrored
)

func (s DirectState) String() string {
	switch s {
	case DirectConnecting:
		return "connecting"
	case DirectStreaming:
		return "streaming"
	case DirectCompleted:
		return "completed"
	case DirectErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Frame is one direct-stream message.
type Frame struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
	Message string `json:"message,omitempty"`
}

// DirectHandler receives the effects of a direct stream. OnComplete and
// OnError are mutually exclusive and called at most once.
type DirectHandler interface {
	// OnAnswer receives the full answer so far; it replaces the previous one.
	OnAnswer(content string)
	OnComplete()
	OnError(message string)
}

// DirectResult summarizes a finished stream.
type DirectResult struct {
	State  DirectState
	Answer string
	Error  string
	Frames int
}

// DirectClient reads the hub's per-interaction text stream. It is the
// fallback when the broadcast channels are not available. It never retries.
type DirectClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewDirectClient creates a client for the hub at baseURL
// (e.g. http://localhost:8080). A nil httpClient uses http.DefaultClient.
func NewDirectClient(baseURL string, httpClient *http.Client) *DirectClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DirectClient{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Stream runs one direct stream to completion. The returned error is nil
// only when the sentinel was received.
func (c *DirectClient) Stream(ctx context.Context, interactionID string, h DirectHandler) (DirectResult, error) {
	s := &directRun{handler: h}

	endpoint := c.baseURL + "/api/v1/interactions/" + url.PathEscape(interactionID) + "/stream"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return s.fail(fmt.Sprintf("failed to create request: %v", err))
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return s.fail(fmt.Sprintf("request failed: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return s.fail(fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	s.result.State = DirectStreaming
	return s.read(resp.Body)
}

type directRun struct {
	handler DirectHandler
	result  DirectResult
}

func (s *directRun) read(body io.Reader) (DirectResult, error) {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ":") ||
			strings.HasPrefix(line, "event:") || strings.HasPrefix(line, "id:") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if line == StreamSentinel {
			s.result.State = DirectCompleted
			s.handler.OnComplete()
			return s.result, nil
		}

		var f Frame
		if err := json.Unmarshal([]byte(line), &f); err != nil {
			return s.fail(fmt.Sprintf("malformed frame: %v", err))
		}
		s.result.Frames++

		switch f.Type {
		case FrameAnswerStream:
			s.result.Answer = f.Content
			s.handler.OnAnswer(f.Content)
		case FrameError:
			msg := f.Message
			if msg == "" {
				msg = f.Content
			}
			return s.fail(msg)
		case FrameResearchStep:
		default:
			slog.Debug("Ignoring unknown direct-stream frame", "type", f.Type)
		}
	}
	if err := scanner.Err(); err != nil {
		return s.fail(fmt.Sprintf("stream read error: %v", err))
	}
	return s.fail("stream ended before completion")
}

func (s *directRun) fail(msg string) (DirectResult, error) {
	s.result.State = DirectErrored
	s.result.Error = msg
	s.result.Answer = msg
	s.handler.OnError(msg)
	return s.result, fmt.Errorf("%w: %s", ErrDirectStream, msg)
}
