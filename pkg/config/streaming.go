package config

import "time"

// StreamingConfig controls the hub's WebSocket fan-out.
type StreamingConfig struct {
	// WSWriteTimeout bounds every write to a WebSocket client.
	WSWriteTimeout time.Duration `yaml:"ws_write_timeout"`

	// CatchupLimit is the maximum number of missed events replayed per
	// subscribe; beyond it clients get catchup.overflow and re-query.
	CatchupLimit int `yaml:"catchup_limit"`
}

// DefaultStreamingConfig returns the built-in streaming defaults.
func DefaultStreamingConfig() *StreamingConfig {
	return &StreamingConfig{
		WSWriteTimeout: 10 * time.Second,
		CatchupLimit:   200,
	}
}

// DirectStreamConfig controls GET /api/v1/interactions/:id/stream.
type DirectStreamConfig struct {
	// PollInterval is how often the producer re-reads the interaction.
	PollInterval time.Duration `yaml:"poll_interval"`

	// MaxDuration ends a stream that never completes with an error frame.
	MaxDuration time.Duration `yaml:"max_duration"`
}

// DefaultDirectStreamConfig returns the built-in direct-stream defaults.
func DefaultDirectStreamConfig() *DirectStreamConfig {
	return &DirectStreamConfig{
		PollInterval: 500 * time.Millisecond,
		MaxDuration:  10 * time.Minute,
	}
}

// CompletionConfig lists the status sources that finish an interaction.
type CompletionConfig struct {
	Sources []string `yaml:"sources"`
}

// DefaultCompletionConfig returns the built-in completion sources.
func DefaultCompletionConfig() *CompletionConfig {
	return &CompletionConfig{
		Sources: []string{"agent_execution_completed", "execution_completed", "interaction_completed"},
	}
}
