package slack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
)

const (
	maxBlockTextLength = 2900
	maxQuestionLength  = 300
)

// InteractionURL is the dashboard deep link of an interaction.
func InteractionURL(dashboardURL, sessionID, interactionID string) string {
	return fmt.Sprintf("%s/sessions/%s?interaction=%s", dashboardURL, sessionID, interactionID)
}

// BuildStartedMessage creates Block Kit blocks for a "research started" reply.
func BuildStartedMessage(input InteractionStartedInput, dashboardURL string) []goslack.Block {
	url := InteractionURL(dashboardURL, input.SessionID, input.InteractionID)
	text := fmt.Sprintf(":mag: *Researching* %s\n<%s|Follow live>", quote(input.Question), url)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildCompletedMessage creates Block Kit blocks for a completed interaction:
// header with the question, the (truncated) answer, and a dashboard button.
func BuildCompletedMessage(input InteractionCompletedInput, dashboardURL string) []goslack.Block {
	header := ":white_check_mark: *Research complete*"
	if input.Question != "" {
		header += "\n" + quote(input.Question)
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}

	if strings.TrimSpace(input.Answer) != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(input.Answer), false, false),
			nil, nil,
		))
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Answer", false, false))
	btn.URL = InteractionURL(dashboardURL, input.SessionID, input.InteractionID)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// quote renders a single-line, length-capped Slack quote.
func quote(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if r := []rune(text); len(r) > maxQuestionLength {
		text = string(r[:maxQuestionLength]) + "…"
	}
	return "> " + text
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	cut := maxBlockTextLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "\n\n_... (truncated, open the dashboard for the full answer)_"
}
