// Package slack posts interaction notifications to a Slack channel.
package slack

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"
)

// threadLookback bounds how far back FindThread searches channel history.
const threadLookback = 24 * time.Hour

// Client is a thin wrapper around the slack-go SDK.
type Client struct {
	api       *goslack.Client
	channelID string
	logger    *slog.Logger
}

// NewClient creates a new Slack API client.
func NewClient(token, channelID string) *Client {
	return newClient(goslack.New(token), channelID)
}

// NewClientWithAPIURL creates a Slack API client that targets a custom API URL.
// Useful for testing with a mock server.
func NewClientWithAPIURL(token, channelID, apiURL string) *Client {
	return newClient(goslack.New(token, goslack.OptionAPIURL(apiURL)), channelID)
}

func newClient(api *goslack.Client, channelID string) *Client {
	return &Client{
		api:       api,
		channelID: channelID,
		logger:    slog.Default().With("component", "slack-client"),
	}
}

// PostMessage sends a message to the configured channel.
// If threadTS is non-empty, the message is posted as a threaded reply.
func (c *Client) PostMessage(ctx context.Context, blocks []goslack.Block, fallback, threadTS string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := []goslack.MsgOption{
		goslack.MsgOptionBlocks(blocks...),
		goslack.MsgOptionText(fallback, false),
	}
	if threadTS != "" {
		opts = append(opts, goslack.MsgOptionTS(threadTS))
	}

	_, _, err := c.api.PostMessageContext(ctx, c.channelID, opts...)
	if err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

// FindThread searches recent channel history for the message an interaction
// was asked from. The trigger text is compared case- and
// whitespace-insensitively. Returns the message ts, or "" when not found.
func (c *Client) FindThread(ctx context.Context, trigger string) (string, error) {
	params := &goslack.GetConversationHistoryParameters{
		ChannelID: c.channelID,
		Oldest:    fmt.Sprintf("%d", time.Now().Add(-threadLookback).Unix()),
		Limit:     50,
	}
	history, err := c.api.GetConversationHistoryContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("conversations.history failed: %w", err)
	}

	want := normalizeText(trigger)
	for _, msg := range history.Messages {
		if strings.Contains(normalizeText(messageText(msg)), want) {
			return msg.Timestamp, nil
		}
	}
	return "", nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalizeText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(s), " "))
}

// messageText joins a message's text with its attachments' text and fallback.
func messageText(msg goslack.Message) string {
	parts := []string{msg.Text}
	for _, att := range msg.Attachments {
		parts = append(parts, att.Text, att.Fallback)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
