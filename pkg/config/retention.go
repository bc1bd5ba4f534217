package config

import "time"

// RetentionConfig controls event cleanup.
type RetentionConfig struct {
	// EventTTL is the maximum age of Event rows before deletion. Catchup
	// only needs events a reconnecting client may have missed.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// CompletedEventGrace is how long the events of a completed interaction
	// stay available for catchup before they are purged. A negative value
	// disables the purge and leaves the events to EventTTL.
	CompletedEventGrace time.Duration `yaml:"completed_event_grace"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:            1 * time.Hour,
		CleanupInterval:     12 * time.Hour,
		CompletedEventGrace: 10 * time.Minute,
	}
}
