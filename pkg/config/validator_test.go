package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Streaming:    DefaultStreamingConfig(),
		DirectStream: DefaultDirectStreamConfig(),
		Completion:   DefaultCompletionConfig(),
		Retention:    DefaultRetentionConfig(),
		Slack:        &SlackConfig{TokenEnv: "SLACK_BOT_TOKEN"},
	}
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		wantField string
		wantErr   error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:      "zero catchup limit",
			mutate:    func(cfg *Config) { cfg.Streaming.CatchupLimit = 0 },
			wantField: "catchup_limit",
			wantErr:   ErrInvalidValue,
		},
		{
			name:      "negative write timeout",
			mutate:    func(cfg *Config) { cfg.Streaming.WSWriteTimeout = -time.Second },
			wantField: "ws_write_timeout",
			wantErr:   ErrInvalidValue,
		},
		{
			name:      "zero poll interval",
			mutate:    func(cfg *Config) { cfg.DirectStream.PollInterval = 0 },
			wantField: "poll_interval",
			wantErr:   ErrInvalidValue,
		},
		{
			name: "max duration below poll interval",
			mutate: func(cfg *Config) {
				cfg.DirectStream.PollInterval = time.Second
				cfg.DirectStream.MaxDuration = 500 * time.Millisecond
			},
			wantField: "max_duration",
			wantErr:   ErrInvalidValue,
		},
		{
			name:      "no completion sources",
			mutate:    func(cfg *Config) { cfg.Completion.Sources = nil },
			wantField: "sources",
			wantErr:   ErrMissingRequiredField,
		},
		{
			name:      "blank completion source",
			mutate:    func(cfg *Config) { cfg.Completion.Sources = []string{"interaction_completed", " "} },
			wantField: "sources[1]",
			wantErr:   ErrInvalidValue,
		},
		{
			name:      "zero event ttl",
			mutate:    func(cfg *Config) { cfg.Retention.EventTTL = 0 },
			wantField: "event_ttl",
			wantErr:   ErrInvalidValue,
		},
		{
			name:      "zero cleanup interval",
			mutate:    func(cfg *Config) { cfg.Retention.CleanupInterval = 0 },
			wantField: "cleanup_interval",
			wantErr:   ErrInvalidValue,
		},
		{
			name:      "slack enabled without channel",
			mutate:    func(cfg *Config) { cfg.Slack.Enabled = true },
			wantField: "channel",
			wantErr:   ErrMissingRequiredField,
		},
		{
			name: "slack disabled ignores missing channel",
			mutate: func(cfg *Config) {
				cfg.Slack.Enabled = false
				cfg.Slack.Channel = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantField, valErr.Field)
		})
	}
}

func TestValidateSlackTokenEnv(t *testing.T) {
	cfg := validConfig()
	cfg.Slack = &SlackConfig{Enabled: true, Channel: "C1", TokenEnv: "CHATSTREAM_TEST_TOKEN_UNSET"}

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHATSTREAM_TEST_TOKEN_UNSET is not set")

	t.Setenv("CHATSTREAM_TEST_TOKEN_UNSET", "xoxb")
	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateMissingSections(t *testing.T) {
	cfg := validConfig()
	cfg.Streaming = nil

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}
