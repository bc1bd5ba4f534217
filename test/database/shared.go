package database

import (
	"context"
	"testing"

	"github.com/codeready-toolchain/chatstream/pkg/database"
	"github.com/codeready-toolchain/chatstream/test/util"
	"github.com/stretchr/testify/require"
)

// SharedTestDB is one migrated schema shared by several hub replicas. Each
// replica gets its own pool via NewClient, so publishes on one replica reach
// subscribers on another only through PostgreSQL NOTIFY/LISTEN.
type SharedTestDB struct {
	connStrWithSchema string
	baseConnStr       string
	schemaName        string
}

// NewSharedTestDB creates and migrates a shared test schema. The schema is
// dropped on test cleanup.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()

	connStr, schemaName := util.CreateTestSchema(t)
	db := util.OpenTestDB(t, connStr)
	require.NoError(t, database.Migrate(context.Background(), db, schemaName))

	return &SharedTestDB{
		connStrWithSchema: connStr,
		baseConnStr:       util.GetBaseConnectionString(t),
		schemaName:        schemaName,
	}
}

// NewClient creates an independent client with its own pool on the shared
// schema. Its connections are closed via t.Cleanup.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()
	return database.NewClientFromDB(util.OpenTestDB(t, s.connStrWithSchema))
}

// BaseConnString returns the connection string without search_path, as
// needed by the LISTEN connection (NOTIFY is database-wide).
func (s *SharedTestDB) BaseConnString() string {
	return s.baseConnStr
}
