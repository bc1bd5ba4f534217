package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("question", "required")

	assert.Equal(t, "validation error on field 'question': required", err.Error())
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, IsValidationError(ErrNotFound))
}

func TestIsPgError(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation}

	assert.True(t, isPgError(unique, pgUniqueViolation))
	assert.True(t, isPgError(fmt.Errorf("insert: %w", unique), pgUniqueViolation))
	assert.False(t, isPgError(unique, pgForeignKeyViolation))
	assert.False(t, isPgError(errors.New("plain"), pgUniqueViolation))
}
