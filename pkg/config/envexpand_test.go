package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "template variable",
			input: "channel: {{.SLACK_CHANNEL}}",
			env:   map[string]string{"SLACK_CHANNEL": "C0123"},
			want:  "channel: C0123",
		},
		{
			name:  "shell syntax is left alone",
			input: "origin: https://${TENANT}.example.com",
			env:   map[string]string{"TENANT": "acme"},
			want:  "origin: https://${TENANT}.example.com",
		},
		{
			name:  "several variables on one line",
			input: "dashboard_url: {{.SCHEME}}://{{.HOST}}:{{.PORT}}",
			env:   map[string]string{"SCHEME": "https", "HOST": "chat.example.com", "PORT": "8443"},
			want:  "dashboard_url: https://chat.example.com:8443",
		},
		{
			name:  "missing variable is empty",
			input: "token_env: {{.NOT_SET_ANYWHERE}}",
			want:  "token_env: ",
		},
		{
			name:  "value containing equals sign",
			input: "x: {{.WITH_EQUALS}}",
			env:   map[string]string{"WITH_EQUALS": "a=b=c"},
			want:  "x: a=b=c",
		},
		{
			name:  "no template syntax",
			input: "streaming:\n  catchup_limit: 50\n",
			want:  "streaming:\n  catchup_limit: 50\n",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

func TestExpandEnvMalformedTemplateReturnsInput(t *testing.T) {
	for _, input := range []string{
		"channel: {{.UNCLOSED",
		"channel: {{range}}",
		"channel: {{.A | nosuchfunc}}",
	} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, input, string(ExpandEnv([]byte(input))))
		})
	}
}

func TestExpandEnvFeedsYAMLParser(t *testing.T) {
	t.Setenv("CATCHUP", "25")
	t.Setenv("SLACK_CHANNEL", "C999")

	input := []byte(`
streaming:
  catchup_limit: {{.CATCHUP}}
system:
  slack:
    channel: "{{.SLACK_CHANNEL}}"
`)

	var cfg ChatstreamYAMLConfig
	require.NoError(t, yaml.Unmarshal(ExpandEnv(input), &cfg))
	require.NotNil(t, cfg.Streaming)
	assert.Equal(t, 25, cfg.Streaming.CatchupLimit)
	require.NotNil(t, cfg.System)
	require.NotNil(t, cfg.System.Slack)
	assert.Equal(t, "C999", cfg.System.Slack.Channel)
}

func TestExpandEnvConcurrentCalls(t *testing.T) {
	t.Setenv("DASHBOARD", "http://dash")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "url: http://dash", string(ExpandEnv([]byte("url: {{.DASHBOARD}}"))))
		}()
	}
	wg.Wait()
}
