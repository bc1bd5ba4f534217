package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file Initialize reads from the config directory.
const ConfigFileName = "chatstream.yaml"

// ChatstreamYAMLConfig represents the complete chatstream.yaml file structure
type ChatstreamYAMLConfig struct {
	System       *SystemYAMLConfig   `yaml:"system"`
	Streaming    *StreamingConfig    `yaml:"streaming"`
	DirectStream *DirectStreamConfig `yaml:"direct_stream"`
	Completion   *CompletionConfig   `yaml:"completion"`
	Retention    *RetentionConfig    `yaml:"retention"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string           `yaml:"dashboard_url"`
	AllowedWSOrigins []string         `yaml:"allowed_ws_origins"`
	Slack            *SlackYAMLConfig `yaml:"slack"`
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load chatstream.yaml from configDir (a missing file means all defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	log.Info("Configuration initialized successfully",
		"catchup_limit", cfg.Streaming.CatchupLimit,
		"completion_sources", len(cfg.Completion.Sources),
		"slack_enabled", cfg.Slack.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	userConfig, err := loader.loadChatstreamYAML()
	if err != nil {
		return nil, NewLoadError(ConfigFileName, err)
	}

	// Start with defaults, then merge user config on top so unset fields
	// keep their default (non-zero values override).
	streaming := DefaultStreamingConfig()
	if userConfig.Streaming != nil {
		if err := mergo.Merge(streaming, userConfig.Streaming, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge streaming config: %w", err)
		}
	}

	directStream := DefaultDirectStreamConfig()
	if userConfig.DirectStream != nil {
		if err := mergo.Merge(directStream, userConfig.DirectStream, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge direct_stream config: %w", err)
		}
	}

	retention := DefaultRetentionConfig()
	if userConfig.Retention != nil {
		if err := mergo.Merge(retention, userConfig.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	// A configured source list replaces the defaults rather than extending them.
	completion := DefaultCompletionConfig()
	if userConfig.Completion != nil && len(userConfig.Completion.Sources) > 0 {
		completion.Sources = userConfig.Completion.Sources
	}

	return &Config{
		configDir:        configDir,
		Streaming:        streaming,
		DirectStream:     directStream,
		Completion:       completion,
		Slack:            resolveSlackConfig(userConfig.System),
		Retention:        retention,
		DashboardURL:     resolveDashboardURL(userConfig.System),
		AllowedWSOrigins: resolveAllowedWSOrigins(userConfig.System),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on template errors, leaving the
	// YAML parser to report them.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadChatstreamYAML reads chatstream.yaml. The file is optional: the hub
// runs on defaults when the config directory does not contain it.
func (l *configLoader) loadChatstreamYAML() (*ChatstreamYAMLConfig, error) {
	var config ChatstreamYAMLConfig

	if _, err := os.Stat(l.configDir); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, l.configDir)
	}
	if err := l.loadYAML(ConfigFileName, &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No chatstream.yaml found, using defaults", "config_dir", l.configDir)
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveSlackConfig resolves Slack configuration from system YAML, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return strings.TrimRight(sys.DashboardURL, "/")
	}
	return "http://localhost:5173"
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
