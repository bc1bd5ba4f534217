package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConvenienceMethods(t *testing.T) {
	cfg := &Config{
		configDir:    "/test/config",
		DashboardURL: "https://chat.example.com",
	}

	t.Run("ConfigDir", func(t *testing.T) {
		assert.Equal(t, "/test/config", cfg.ConfigDir())
	})

	t.Run("InteractionURL", func(t *testing.T) {
		assert.Equal(t,
			"https://chat.example.com/sessions/s-1?interaction=i-9",
			cfg.InteractionURL("s-1", "i-9"))
	})
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 200, DefaultStreamingConfig().CatchupLimit)
	assert.Positive(t, DefaultStreamingConfig().WSWriteTimeout)

	ds := DefaultDirectStreamConfig()
	assert.Less(t, ds.PollInterval, ds.MaxDuration)

	assert.Equal(t,
		[]string{"agent_execution_completed", "execution_completed", "interaction_completed"},
		DefaultCompletionConfig().Sources)

	r := DefaultRetentionConfig()
	assert.Positive(t, r.EventTTL)
	assert.Positive(t, r.CleanupInterval)
}

func TestDefaultsAreIndependentCopies(t *testing.T) {
	a := DefaultCompletionConfig()
	a.Sources[0] = "changed"
	assert.Equal(t, "agent_execution_completed", DefaultCompletionConfig().Sources[0])
}
