// Package util starts and shares the PostgreSQL instance used by integration
// tests and hands out one isolated schema per test.
package util

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// externalDatabaseEnv points tests at an already running PostgreSQL
	// (the CI service container) instead of a testcontainer.
	externalDatabaseEnv = "CI_DATABASE_URL"
	// imageEnv overrides the container image.
	imageEnv     = "CHATSTREAM_TEST_PG_IMAGE"
	defaultImage = "postgres:17-alpine"

	maxSchemaNameLen = 63
)

// sharedPostgres is started at most once per test binary.
var sharedPostgres struct {
	once    sync.Once
	connStr string
	err     error
}

// CreateTestSchema creates an empty schema named after the test and returns
// a connection string whose search_path selects it. The schema is dropped
// when the test ends; migrating it is up to the caller.
func CreateTestSchema(t *testing.T) (connStrWithSchema, schemaName string) {
	t.Helper()

	base := GetBaseConnectionString(t)
	schemaName = GenerateSchemaName(t)
	quoted := pgx.Identifier{schemaName}.Sanitize()

	execAdmin(t, base, "CREATE SCHEMA "+quoted)
	t.Cleanup(func() {
		if err := tryExecAdmin(base, "DROP SCHEMA IF EXISTS "+quoted+" CASCADE"); err != nil {
			t.Logf("failed to drop test schema %s: %v", schemaName, err)
		}
	})

	return AddSearchPathToConnString(base, schemaName), schemaName
}

// OpenTestDB opens a pool on connStr that is closed when the test ends,
// before its schema is dropped.
func OpenTestDB(t *testing.T, connStr string) *stdsql.DB {
	t.Helper()
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// GetBaseConnectionString returns the connection string of the shared
// database without a search_path. LISTEN connections use it directly since
// NOTIFY is not schema scoped.
func GetBaseConnectionString(t *testing.T) string {
	t.Helper()
	if external := os.Getenv(externalDatabaseEnv); external != "" {
		return external
	}

	sharedPostgres.once.Do(func() {
		sharedPostgres.connStr, sharedPostgres.err = startPostgres(context.Background())
	})
	require.NoError(t, sharedPostgres.err, "shared PostgreSQL container is not available")
	return sharedPostgres.connStr
}

func startPostgres(ctx context.Context) (string, error) {
	image := os.Getenv(imageEnv)
	if image == "" {
		image = defaultImage
	}

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase("chatstream_test"),
		postgres.WithUsername("chatstream"),
		postgres.WithPassword("chatstream"),
		postgres.WithInitScripts(initScriptPath()),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("start %s: %w", image, err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("container connection string: %w", err)
	}
	return connStr, nil
}

// GenerateSchemaName derives a unique schema name from the test name, e.g.
// "t_testinteractionlifecycle_1a2b3c4d".
func GenerateSchemaName(t *testing.T) string {
	var b strings.Builder
	for _, r := range strings.ToLower(t.Name()) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	suffix := "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	name := "t_" + b.String()
	if len(name)+len(suffix) > maxSchemaNameLen {
		name = name[:maxSchemaNameLen-len(suffix)]
	}
	return name + suffix
}

// AddSearchPathToConnString sets search_path on a URL or keyword/value
// connection string so every pooled connection uses schemaName.
func AddSearchPathToConnString(connStr, schemaName string) string {
	if u, err := url.Parse(connStr); err == nil && (u.Scheme == "postgres" || u.Scheme == "postgresql") {
		q := u.Query()
		q.Set("search_path", schemaName)
		u.RawQuery = q.Encode()
		return u.String()
	}
	return connStr + " search_path=" + schemaName
}

func execAdmin(t *testing.T, connStr, stmt string) {
	t.Helper()
	require.NoError(t, tryExecAdmin(connStr, stmt), stmt)
}

func tryExecAdmin(connStr, stmt string) error {
	db, err := stdsql.Open("pgx", connStr)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err = db.ExecContext(ctx, stmt)
	return err
}

// initScriptPath locates deploy/postgres-init/01-init.sql from this file,
// whichever package's tests are running.
func initScriptPath() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("initScriptPath: runtime.Caller failed")
	}
	root := filepath.Join(filepath.Dir(thisFile), "..", "..")
	return filepath.Join(root, "deploy", "postgres-init", "01-init.sql")
}
