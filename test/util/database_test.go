package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSchemaName(t *testing.T) {
	t.Run("sanitized and unique", func(t *testing.T) {
		a, b := GenerateSchemaName(t), GenerateSchemaName(t)
		assert.NotEqual(t, a, b)
		assert.True(t, strings.HasPrefix(a, "t_testgenerateschemaname_sanitized_and_unique_"), a)
	})

	t.Run("a very long subtest name that would overflow the postgres identifier limit", func(t *testing.T) {
		name := GenerateSchemaName(t)
		assert.LessOrEqual(t, len(name), maxSchemaNameLen)
	})
}

func TestAddSearchPathToConnString(t *testing.T) {
	assert.Equal(t,
		"postgres://u:p@localhost:5432/db?search_path=t_x&sslmode=disable",
		AddSearchPathToConnString("postgres://u:p@localhost:5432/db?sslmode=disable", "t_x"))
	assert.Equal(t,
		"host=localhost dbname=db search_path=t_x",
		AddSearchPathToConnString("host=localhost dbname=db", "t_x"))
}
