package slack

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// InteractionStartedInput contains data for a "research started" reply.
type InteractionStartedInput struct {
	InteractionID string
	SessionID     string
	Question      string
	// Trigger is the text of the Slack message that asked the question.
	// Notifications are only threaded when it is set.
	Trigger string
}

// InteractionCompletedInput contains data for a completion notification.
type InteractionCompletedInput struct {
	InteractionID string
	SessionID     string
	Question      string
	Answer        string
	Trigger       string
}

// Service handles Slack notification delivery.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return NewServiceWithClient(NewClient(cfg.Token, cfg.Channel), cfg.DashboardURL)
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyInteractionStarted replies in the triggering thread that research
// has started. Interactions not asked from Slack are skipped.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyInteractionStarted(ctx context.Context, input InteractionStartedInput) {
	if s == nil || input.Trigger == "" {
		return
	}

	threadTS := s.findThread(ctx, input.InteractionID, input.Trigger)
	if threadTS == "" {
		return
	}

	blocks := BuildStartedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "Researching: "+input.Question, threadTS, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack start notification",
			"interaction_id", input.InteractionID,
			"error", err)
	}
}

// NotifyInteractionCompleted posts the answer of a completed interaction,
// threaded under the triggering message when there is one.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyInteractionCompleted(ctx context.Context, input InteractionCompletedInput) {
	if s == nil {
		return
	}

	var threadTS string
	if input.Trigger != "" {
		threadTS = s.findThread(ctx, input.InteractionID, input.Trigger)
	}

	blocks := BuildCompletedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "Research complete: "+input.Question, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack completion notification",
			"interaction_id", input.InteractionID,
			"error", err)
	}
}

func (s *Service) findThread(ctx context.Context, interactionID, trigger string) string {
	threadTS, err := s.client.FindThread(ctx, trigger)
	if err != nil {
		s.logger.Warn("Failed to find Slack thread for interaction",
			"interaction_id", interactionID,
			"error", err)
	}
	return threadTS
}
