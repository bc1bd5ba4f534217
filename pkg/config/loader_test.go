package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestInitializeWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultStreamingConfig(), cfg.Streaming)
	assert.Equal(t, DefaultDirectStreamConfig(), cfg.DirectStream)
	assert.Equal(t, DefaultCompletionConfig(), cfg.Completion)
	assert.Equal(t, DefaultRetentionConfig(), cfg.Retention)
	assert.False(t, cfg.Slack.Enabled)
	assert.Equal(t, "SLACK_BOT_TOKEN", cfg.Slack.TokenEnv)
	assert.Equal(t, "http://localhost:5173", cfg.DashboardURL)
	assert.Nil(t, cfg.AllowedWSOrigins)
}

func TestInitializeConfigDirNotFound(t *testing.T) {
	_, err := Initialize(context.Background(), "/nonexistent/directory")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "streaming: [unterminated")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ConfigFileName, loadErr.File)
}

func TestInitializeMergesOverDefaults(t *testing.T) {
	t.Setenv("CHATSTREAM_SLACK_TOKEN", "xoxb-test")
	t.Setenv("CHATSTREAM_DASHBOARD", "https://chat.example.com/")

	dir := writeConfig(t, `
system:
  dashboard_url: "{{.CHATSTREAM_DASHBOARD}}"
  allowed_ws_origins:
    - "*.example.com"
  slack:
    enabled: true
    token_env: CHATSTREAM_SLACK_TOKEN
    channel: C42
streaming:
  catchup_limit: 50
direct_stream:
  max_duration: 2m
completion:
  sources: [interaction_completed]
retention:
  event_ttl: 30m
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden fields take the file's value; the rest keep defaults.
	assert.Equal(t, 50, cfg.Streaming.CatchupLimit)
	assert.Equal(t, DefaultStreamingConfig().WSWriteTimeout, cfg.Streaming.WSWriteTimeout)
	assert.Equal(t, 2*time.Minute, cfg.DirectStream.MaxDuration)
	assert.Equal(t, DefaultDirectStreamConfig().PollInterval, cfg.DirectStream.PollInterval)
	assert.Equal(t, 30*time.Minute, cfg.Retention.EventTTL)
	assert.Equal(t, DefaultRetentionConfig().CleanupInterval, cfg.Retention.CleanupInterval)

	assert.Equal(t, []string{"interaction_completed"}, cfg.Completion.Sources)

	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "CHATSTREAM_SLACK_TOKEN", cfg.Slack.TokenEnv)
	assert.Equal(t, "C42", cfg.Slack.Channel)
	assert.Equal(t, "https://chat.example.com", cfg.DashboardURL)
	assert.Equal(t, []string{"*.example.com"}, cfg.AllowedWSOrigins)
	assert.Equal(t, dir, cfg.ConfigDir())
}

func TestInitializeEmptySourcesKeepDefaults(t *testing.T) {
	dir := writeConfig(t, "completion:\n  sources: []\n")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultCompletionConfig().Sources, cfg.Completion.Sources)
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := writeConfig(t, `
direct_stream:
  poll_interval: 5s
  max_duration: 1s
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.ErrorIs(t, err, ErrInvalidValue)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "direct_stream", valErr.Section)
	assert.Equal(t, "max_duration", valErr.Field)
}

func TestInitializeSlackEnabledWithoutChannel(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	dir := writeConfig(t, "system:\n  slack:\n    enabled: true\n")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "slack")
}
