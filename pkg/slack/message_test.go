package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessage(t *testing.T) {
	blocks := BuildStartedMessage(InteractionStartedInput{
		InteractionID: "int-1",
		SessionID:     "sess-1",
		Question:      "How did\nrevenue   change?",
	}, "https://chat.example.com")

	require.Len(t, blocks, 1)
	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "> How did revenue change?")
	assert.Contains(t, section.Text.Text, "https://chat.example.com/sessions/sess-1?interaction=int-1")
}

func TestBuildCompletedMessage(t *testing.T) {
	blocks := BuildCompletedMessage(InteractionCompletedInput{
		InteractionID: "int-1",
		SessionID:     "sess-1",
		Question:      "Top competitors?",
		Answer:        "Acme and Globex.",
	}, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "> Top competitors?")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Equal(t, "Acme and Globex.", content.Text.Text)

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Answer", btn.Text.Text)
	assert.Equal(t, "https://dash.example.com/sessions/sess-1?interaction=int-1", btn.URL)
}

func TestBuildCompletedMessage_NoAnswer(t *testing.T) {
	blocks := BuildCompletedMessage(InteractionCompletedInput{
		InteractionID: "int-1",
		SessionID:     "sess-1",
		Answer:        "   ",
	}, "https://dash.example.com")

	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock)
	assert.NotContains(t, header.Text.Text, ">")
	_, ok := blocks[1].(*goslack.ActionBlock)
	assert.True(t, ok)
}

func TestQuoteCapsLength(t *testing.T) {
	q := quote(strings.Repeat("ä", maxQuestionLength+50))
	assert.True(t, utf8.ValidString(q))
	assert.Equal(t, maxQuestionLength+len("> ")+1, utf8.RuneCountInString(q))
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "short", truncateForSlack("short"))
	})

	t.Run("long text truncated", func(t *testing.T) {
		out := truncateForSlack(strings.Repeat("a", maxBlockTextLength+100))
		assert.True(t, strings.HasPrefix(out, strings.Repeat("a", maxBlockTextLength)))
		assert.Contains(t, out, "truncated")
	})

	t.Run("multibyte boundary kept valid", func(t *testing.T) {
		out := truncateForSlack("a" + strings.Repeat("é", maxBlockTextLength))
		assert.True(t, utf8.ValidString(out))
	})
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "what is our churn rate?", normalizeText("  What is\tour\n\nCHURN rate? "))
	assert.Empty(t, normalizeText(""))
}

func TestMessageText(t *testing.T) {
	msg := goslack.Message{Msg: goslack.Msg{
		Text: "question",
		Attachments: []goslack.Attachment{
			{Text: "more context", Fallback: "fallback"},
			{},
		},
	}}
	assert.Equal(t, "question more context fallback", messageText(msg))
}
