package config

import (
	"fmt"
	"os"
	"strings"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateStreaming(); err != nil {
		return fmt.Errorf("streaming validation failed: %w", err)
	}

	if err := v.validateDirectStream(); err != nil {
		return fmt.Errorf("direct stream validation failed: %w", err)
	}

	if err := v.validateCompletion(); err != nil {
		return fmt.Errorf("completion validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	if err := v.validateSlack(); err != nil {
		return fmt.Errorf("slack validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateStreaming() error {
	s := v.cfg.Streaming
	if s == nil {
		return NewValidationError("streaming", "", fmt.Errorf("%w: streaming", ErrMissingRequiredField))
	}
	if s.WSWriteTimeout <= 0 {
		return NewValidationError("streaming", "ws_write_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.CatchupLimit <= 0 {
		return NewValidationError("streaming", "catchup_limit", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateDirectStream() error {
	d := v.cfg.DirectStream
	if d == nil {
		return NewValidationError("direct_stream", "", fmt.Errorf("%w: direct_stream", ErrMissingRequiredField))
	}
	if d.PollInterval <= 0 {
		return NewValidationError("direct_stream", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if d.MaxDuration < d.PollInterval {
		return NewValidationError("direct_stream", "max_duration",
			fmt.Errorf("%w: must be at least poll_interval (%s)", ErrInvalidValue, d.PollInterval))
	}
	return nil
}

func (v *ConfigValidator) validateCompletion() error {
	c := v.cfg.Completion
	if c == nil || len(c.Sources) == 0 {
		return NewValidationError("completion", "sources", fmt.Errorf("%w: at least one source required", ErrMissingRequiredField))
	}
	for i, src := range c.Sources {
		if strings.TrimSpace(src) == "" {
			return NewValidationError("completion", fmt.Sprintf("sources[%d]", i), fmt.Errorf("%w: empty source", ErrInvalidValue))
		}
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return NewValidationError("retention", "", fmt.Errorf("%w: retention", ErrMissingRequiredField))
	}
	if r.EventTTL <= 0 {
		return NewValidationError("retention", "event_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "cleanup_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateSlack() error {
	s := v.cfg.Slack
	if s == nil || !s.Enabled {
		return nil
	}
	if s.Channel == "" {
		return NewValidationError("slack", "channel", fmt.Errorf("%w: channel required when slack is enabled", ErrMissingRequiredField))
	}
	if s.TokenEnv == "" {
		return NewValidationError("slack", "token_env", fmt.Errorf("%w: token_env required when slack is enabled", ErrMissingRequiredField))
	}
	if os.Getenv(s.TokenEnv) == "" {
		return NewValidationError("slack", "token_env", fmt.Errorf("environment variable %s is not set", s.TokenEnv))
	}
	return nil
}
