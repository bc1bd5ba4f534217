package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// healthTimeout bounds the checks so /health answers even when the pool is
// exhausted.
const healthTimeout = 2 * time.Second

// HealthStatus is the database part of the hub's /health answer.
type HealthStatus struct {
	Status        string `json:"status"`
	Error         string `json:"error,omitempty"`
	ResponseTime  int64  `json:"response_time_ms"`
	SchemaVersion uint   `json:"schema_version"`
	// Pool usage, so a hub starving on connections is visible.
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	WaitCount       int64 `json:"wait_count"`
}

// Health pings the database and reads the applied migration version. A
// failed ping or a dirty migration returns an "unhealthy" status together
// with the error.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	start := time.Now()
	status := &HealthStatus{Status: "healthy"}

	err := db.PingContext(ctx)
	if err == nil {
		status.SchemaVersion, err = schemaVersion(ctx, db)
	}
	status.ResponseTime = time.Since(start).Milliseconds()

	stats := db.Stats()
	status.OpenConnections = stats.OpenConnections
	status.InUse = stats.InUse
	status.WaitCount = stats.WaitCount

	if err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
		return status, err
	}
	return status, nil
}

// schemaVersion reads golang-migrate's bookkeeping table.
func schemaVersion(ctx context.Context, db *sql.DB) (uint, error) {
	var (
		version int64
		dirty   bool
	)
	err := db.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errors.New("no migration applied")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		return uint(version), fmt.Errorf("migration %d is dirty", version)
	}
	return uint(version), nil
}
