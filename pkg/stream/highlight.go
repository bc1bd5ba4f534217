package stream

import (
	"regexp"
	"strings"
)

// SegmentKind classifies a piece of a step message for styling.
type SegmentKind string

// Segment kinds.
const (
	SegmentPlain  SegmentKind = "plain"
	SegmentURL    SegmentKind = "url"
	SegmentQuery  SegmentKind = "query"
	SegmentDomain SegmentKind = "domain"
)

// Segment is a run of message text. Concatenating the Text of all segments
// returned by Highlight yields the original message.
type Segment struct {
	Kind SegmentKind
	Text string
}

var highlightPattern = regexp.MustCompile(
	`(?i)(https?://[^\s"'<>]+)` + // 1: url
		`|("[^"\n]+"|'[^'\n]+')` + // 2: quoted query
		`|\b((?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,24})\b`, // 3: domain
)

// Highlight splits message into plain, URL, quoted query and domain
// segments. It is purely presentational.
func Highlight(message string) []Segment {
	var segs []Segment
	plainFrom := 0
	emit := func(kind SegmentKind, text string) {
		if text == "" {
			return
		}
		if n := len(segs); n > 0 && segs[n-1].Kind == kind && kind == SegmentPlain {
			segs[n-1].Text += text
			return
		}
		segs = append(segs, Segment{Kind: kind, Text: text})
	}

	for _, m := range highlightPattern.FindAllStringSubmatchIndex(message, -1) {
		start, end := m[0], m[1]
		var kind SegmentKind
		switch {
		case m[2] >= 0:
			kind = SegmentURL
			// Sentence punctuation after a URL is not part of it.
			trimmed := strings.TrimRight(message[start:end], ".,;:!?)]")
			end = start + len(trimmed)
		case m[4] >= 0:
			// An apostrophe inside a word ("don't") does not open a query.
			if message[start] == '\'' && start > 0 && isWordByte(message[start-1]) {
				continue
			}
			kind = SegmentQuery
		case m[6] >= 0:
			// Skip the tail of an e-mail address or a dotted identifier.
			if start > 0 && (message[start-1] == '@' || message[start-1] == '.') {
				continue
			}
			kind = SegmentDomain
		default:
			continue
		}
		emit(SegmentPlain, message[plainFrom:start])
		emit(kind, message[start:end])
		plainFrom = end
	}
	emit(SegmentPlain, message[plainFrom:])
	return segs
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
