// Package database provides migrated PostgreSQL clients for tests.
package database

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/chatstream/pkg/database"
	"github.com/codeready-toolchain/chatstream/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a test database client on a fresh, migrated schema.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: uses a shared PostgreSQL testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	connStr, schemaName := util.CreateTestSchema(t)
	db := util.OpenTestDB(t, connStr)

	err := database.Migrate(context.Background(), db, schemaName)
	require.NoError(t, err)

	return database.NewClientFromDB(db)
}
