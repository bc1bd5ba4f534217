package config

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorMessage(t *testing.T) {
	cause := errors.New("must be positive")

	assert.Equal(t, "streaming.catchup_limit: must be positive",
		NewValidationError("streaming", "catchup_limit", cause).Error())
	assert.Equal(t, "completion.sources[1]: must be positive",
		NewValidationError("completion", "sources[1]", cause).Error())
	assert.Equal(t, "retention: must be positive",
		NewValidationError("retention", "", cause).Error())
}

func TestValidationErrorChain(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrValidationFailed,
		NewValidationError("slack", "channel", fmt.Errorf("%w: channel", ErrMissingRequiredField)))

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "slack", valErr.Section)
	assert.Equal(t, "channel", valErr.Field)
	assert.Equal(t, "configuration validation failed: slack.channel: missing required field: channel", err.Error())
}

func TestLoadError(t *testing.T) {
	err := NewLoadError(ConfigFileName, fmt.Errorf("%w: line 3", ErrInvalidYAML))

	assert.Equal(t, "failed to load chatstream.yaml: invalid YAML syntax: line 3", err.Error())
	assert.ErrorIs(t, err, ErrInvalidYAML)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}
