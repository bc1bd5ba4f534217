package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCommit(t *testing.T) {
	withRevision := func(rev string) func() (*debug.BuildInfo, bool) {
		return func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: rev}}}, true
		}
	}
	noInfo := func() (*debug.BuildInfo, bool) { return nil, false }

	assert.Equal(t, "0123abcd", resolveCommit("0123abcdef99", noInfo))
	assert.Equal(t, "abc", resolveCommit("abc", noInfo))
	assert.Equal(t, "deadbeef", resolveCommit("", withRevision("deadbeefcafe")))
	assert.Equal(t, "dev", resolveCommit("", withRevision("")))
	assert.Equal(t, "dev", resolveCommit("", noInfo))
}

func TestFullAndUserAgent(t *testing.T) {
	assert.Equal(t, "chatstream/"+GitCommit, Full())
	assert.Equal(t, "chatstream-chatwatch/"+GitCommit, UserAgent("chatwatch"))
}
