package config

// Config is the umbrella configuration object returned by Initialize and
// used throughout the hub.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Broadcast hub WebSocket behaviour
	Streaming *StreamingConfig

	// Direct-chat text stream producer
	DirectStream *DirectStreamConfig

	// Status sources that mark an interaction as finished
	Completion *CompletionConfig

	// Resolved system settings
	Slack            *SlackConfig
	Retention        *RetentionConfig
	DashboardURL     string
	AllowedWSOrigins []string
}

// Initialize is defined in loader.go

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// InteractionURL returns the dashboard link for an interaction.
func (c *Config) InteractionURL(sessionID, interactionID string) string {
	return c.DashboardURL + "/sessions/" + sessionID + "?interaction=" + interactionID
}
