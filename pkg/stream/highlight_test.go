package stream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func joinSegments(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []Segment
	}{
		{
			name:    "plain text",
			message: "Analyzing results",
			want:    []Segment{{SegmentPlain, "Analyzing results"}},
		},
		{
			name:    "url with trailing period",
			message: "Reading https://go.dev/doc/effective_go.",
			want: []Segment{
				{SegmentPlain, "Reading "},
				{SegmentURL, "https://go.dev/doc/effective_go"},
				{SegmentPlain, "."},
			},
		},
		{
			name:    "quoted query",
			message: `Searching for "go channels" now`,
			want: []Segment{
				{SegmentPlain, "Searching for "},
				{SegmentQuery, `"go channels"`},
				{SegmentPlain, " now"},
			},
		},
		{
			name:    "single quoted query",
			message: "Searching 'pgx listen'",
			want: []Segment{
				{SegmentPlain, "Searching "},
				{SegmentQuery, "'pgx listen'"},
			},
		},
		{
			name:    "domain",
			message: "Fetched 3 pages from go.dev",
			want: []Segment{
				{SegmentPlain, "Fetched 3 pages from "},
				{SegmentDomain, "go.dev"},
			},
		},
		{
			name:    "apostrophe is not a query",
			message: "Don't stop",
			want:    []Segment{{SegmentPlain, "Don't stop"}},
		},
		{
			name:    "empty",
			message: "",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.message)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.message, joinSegments(got))
		})
	}
}

func TestHighlight_RoundTrip(t *testing.T) {
	messages := []string{
		`Visiting https://example.com/a?b=c, then "deep dive" on www.example.org (ok)`,
		"mail me at someone@example.com",
		"v1.2.3 released",
	}
	for _, m := range messages {
		assert.Equal(t, m, joinSegments(Highlight(m)))
	}
}
