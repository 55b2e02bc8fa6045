// Package runlog appends a diagnostic record per training/recall run to a
// small sqlite catalog, grounded on
// _examples/iamolegataeff-molecule/molecule.go's use of the pure-Go
// modernc.org/sqlite driver for its own "memory.sqlite3" history. The
// catalog is opened, written, and closed within a single call — no
// process-wide handle is kept (resource model, spec §5) — and a failure to
// open or write it is returned to the caller, and neither caller lets it
// fail the pipeline stage it is merely describing (SPEC_FULL.md §10.1):
// training.Run logs and swallows it, recall.Session discards it.
package runlog

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/hopfield/internal/fsio"
)

// Entry is one row of the run catalog.
type Entry struct {
	ID           string
	Kind         string // "training" or "recall"
	StartedAt    time.Time
	DurationMS   int64
	N            int
	MOrIteration int64 // M for training, iteration count for recall
	Detail       string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id             TEXT PRIMARY KEY,
	kind           TEXT NOT NULL,
	started_at     TEXT NOT NULL,
	duration_ms    INTEGER NOT NULL,
	n              INTEGER NOT NULL,
	m_or_iteration INTEGER NOT NULL,
	detail         TEXT NOT NULL
);`

// Append opens baseDir/runs/runs.db (creating the directory and schema as
// needed), assigns a fresh UUIDv4 if e.ID is empty, inserts one row, and
// closes the handle before returning.
func Append(baseDir string, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	runsDir := filepath.Join(baseDir, "runs")
	if err := fsio.EnsureDir(runsDir); err != nil {
		return fmt.Errorf("runlog.Append: %w", err)
	}

	dbPath := filepath.Join(runsDir, "runs.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("runlog.Append: open: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("runlog.Append: schema: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO runs (id, kind, started_at, duration_ms, n, m_or_iteration, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Kind, e.StartedAt.UTC().Format(time.RFC3339Nano), e.DurationMS, e.N, e.MOrIteration, e.Detail,
	)
	if err != nil {
		return fmt.Errorf("runlog.Append: insert: %w", err)
	}

	return nil
}
