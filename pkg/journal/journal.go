// Package journal keeps a local SQLite copy of every timeline step a view
// renders, so a timeline can be replayed after the live view is gone.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Register the sqlite driver for database/sql

	"github.com/codeready-toolchain/chatstream/pkg/stream"
)

// ErrNoSteps is returned by Replay when nothing was journaled for the
// interaction.
var ErrNoSteps = errors.New("no journaled steps")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS steps (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL REFERENCES runs(id),
	interaction_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	step_key TEXT NOT NULL DEFAULT '',
	supersedes INTEGER NOT NULL DEFAULT 0,
	source TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL,
	significant INTEGER NOT NULL DEFAULT 0,
	duration_ns INTEGER NOT NULL DEFAULT 0,
	metadata TEXT,
	occurred_at TEXT NOT NULL,
	UNIQUE (run_id, interaction_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_steps_interaction ON steps(interaction_id, position);
`

// Summary describes the journaled timeline of one interaction.
type Summary struct {
	InteractionID string
	Steps         int
	LastStepAt    time.Time
}

// Journal is a stream.RenderTarget that appends every step it is given.
// Each Journal value is one run; steps of earlier runs are never touched.
type Journal struct {
	db    *sql.DB
	runID string
}

// Open opens (creating if needed) the journal at path. ":memory:" gives a
// throwaway journal.
func Open(path string) (*Journal, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// One writer; also keeps a ":memory:" database on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	j := &Journal{db: db, runID: uuid.New().String()}
	if _, err := db.Exec(`INSERT INTO runs (id, started_at) VALUES (?, ?)`,
		j.runID, time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("start journal run: %w", err)
	}
	return j, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// RunID identifies this Journal's run.
func (j *Journal) RunID() string { return j.runID }

// RenderStep implements stream.RenderTarget. Failures are logged; the live
// view keeps going without its journal.
func (j *Journal) RenderStep(interactionID string, step stream.Step) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := j.Append(ctx, interactionID, step); err != nil {
		slog.Warn("Failed to journal step",
			"interaction_id", interactionID, "seq", step.Seq, "error", err)
	}
}

// Append stores one step. A step with a Seq already journaled in this run
// is rejected; earlier steps are never rewritten.
func (j *Journal) Append(ctx context.Context, interactionID string, step stream.Step) error {
	var metadata []byte
	if len(step.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(step.Metadata)
		if err != nil {
			return fmt.Errorf("marshal step metadata: %w", err)
		}
	}

	_, err := j.db.ExecContext(ctx,
		`INSERT INTO steps (run_id, interaction_id, seq, step_key, supersedes, source, message,
			significant, duration_ns, metadata, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.runID, interactionID, step.Seq, step.Key, step.Supersedes, step.Source, step.Message,
		step.Significant, int64(step.Duration), nullableText(metadata),
		step.Timestamp.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert step %d: %w", step.Seq, err)
	}
	return nil
}

// Replay renders the most recent run's timeline of interactionID to target,
// in the order it was appended. It returns the number of steps replayed.
func (j *Journal) Replay(ctx context.Context, interactionID string, target stream.RenderTarget) (int, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT seq, step_key, supersedes, source, message, significant, duration_ns, metadata, occurred_at
		FROM steps
		WHERE interaction_id = ? AND run_id = (
			SELECT run_id FROM steps WHERE interaction_id = ? ORDER BY position DESC LIMIT 1)
		ORDER BY position`,
		interactionID, interactionID)
	if err != nil {
		return 0, fmt.Errorf("query steps: %w", err)
	}
	defer func() { _ = rows.Close() }()

	n := 0
	for rows.Next() {
		step, err := scanStep(rows)
		if err != nil {
			return n, err
		}
		target.RenderStep(interactionID, step)
		n++
	}
	if err := rows.Err(); err != nil {
		return n, fmt.Errorf("read steps: %w", err)
	}
	if n == 0 {
		return 0, ErrNoSteps
	}
	return n, nil
}

// Interactions lists journaled interactions, most recently active first.
func (j *Journal) Interactions(ctx context.Context) ([]Summary, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT interaction_id, COUNT(*), MAX(occurred_at) FROM steps
		GROUP BY interaction_id ORDER BY MAX(position) DESC`)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var (
			s    Summary
			last string
		)
		if err := rows.Scan(&s.InteractionID, &s.Steps, &last); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		s.LastStepAt, _ = time.Parse(time.RFC3339Nano, last)
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanStep(rows *sql.Rows) (stream.Step, error) {
	var (
		step       stream.Step
		durationNS int64
		metadata   sql.NullString
		occurredAt string
	)
	if err := rows.Scan(&step.Seq, &step.Key, &step.Supersedes, &step.Source, &step.Message,
		&step.Significant, &durationNS, &metadata, &occurredAt); err != nil {
		return step, fmt.Errorf("scan step: %w", err)
	}
	step.Duration = time.Duration(durationNS)
	step.Segments = stream.Highlight(step.Message)
	step.Shape = stream.ShapeDetail
	if step.Significant {
		step.Shape = stream.ShapeMilestone
	}
	if ts, err := time.Parse(time.RFC3339Nano, occurredAt); err == nil {
		step.Timestamp = ts
	}
	if metadata.Valid && metadata.String != "" {
		if err := json.Unmarshal([]byte(metadata.String), &step.Metadata); err != nil {
			return step, fmt.Errorf("decode metadata of step %d: %w", step.Seq, err)
		}
	}
	return step, nil
}

func nullableText(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
