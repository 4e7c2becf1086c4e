package history

import (
	"database/sql"
	"fmt"
	"time"
)

const SchemaVersion = 1

// Snapshot is one persisted analysis run for a root directory.
type Snapshot struct {
	RunID         string
	RootKey       string
	SchemaVersion int
	Timestamp     time.Time

	FileCount     int
	LineCount     int
	CommentCount  int
	FunctionCount int
	ClassCount    int

	CommentsScore int
	NamingScore   int
	TestsScore    int
	ExamplesScore int
}

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS runs (
  run_id TEXT NOT NULL,
  root_key TEXT NOT NULL,
  schema_version INTEGER NOT NULL,
  ts_utc TEXT NOT NULL,
  file_count INTEGER NOT NULL,
  line_count INTEGER NOT NULL,
  comment_count INTEGER NOT NULL,
  function_count INTEGER NOT NULL,
  class_count INTEGER NOT NULL,
  comments_score INTEGER NOT NULL,
  naming_score INTEGER NOT NULL,
  tests_score INTEGER NOT NULL,
  examples_score INTEGER NOT NULL,
  created_at_utc TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP),
  PRIMARY KEY (run_id)
);
CREATE INDEX IF NOT EXISTS idx_runs_root_key ON runs(root_key);
CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(ts_utc);
`,
	},
}

func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  applied_at_utc TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
);
`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	var current int
	if err := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema_migrations version: %w", err)
	}
	if current > SchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", current, SchemaVersion)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version) VALUES (?)`, m.version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
	}

	return nil
}
