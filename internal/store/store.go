// Package store loads plan and program trees from a SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when the requested plan or program does not exist.
var ErrNotFound = errors.New("store: not found")

// Store reads planning records. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS public_entities (
	id      INTEGER PRIMARY KEY,
	name    TEXT NOT NULL,
	acronym TEXT,
	sector  TEXT
);

CREATE TABLE IF NOT EXISTS plans (
	id         INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	version    TEXT,
	status     TEXT,
	budget     TEXT,
	start_date TEXT,
	end_date   TEXT,
	entity_id  INTEGER REFERENCES public_entities(id),
	created_by TEXT,
	created_at TEXT,
	updated_at TEXT
);

CREATE TABLE IF NOT EXISTS strategic_objectives (
	id          INTEGER PRIMARY KEY,
	plan_id     INTEGER NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
	code        TEXT,
	name        TEXT NOT NULL,
	weight      TEXT,
	start_date  TEXT,
	end_date    TEXT
);
CREATE INDEX IF NOT EXISTS idx_objectives_plan ON strategic_objectives(plan_id);

CREATE TABLE IF NOT EXISTS indicators (
	id           INTEGER PRIMARY KEY,
	objective_id INTEGER NOT NULL REFERENCES strategic_objectives(id) ON DELETE CASCADE,
	name         TEXT NOT NULL,
	unit         TEXT,
	baseline     TEXT,
	target       TEXT,
	frequency    TEXT
);
CREATE INDEX IF NOT EXISTS idx_indicators_objective ON indicators(objective_id);

CREATE TABLE IF NOT EXISTS alignments (
	id            INTEGER PRIMARY KEY,
	objective_id  INTEGER NOT NULL REFERENCES strategic_objectives(id) ON DELETE CASCADE,
	pnd_objective TEXT,
	pnd_policy    TEXT,
	ods_goal      TEXT,
	ods_target    TEXT
);
CREATE INDEX IF NOT EXISTS idx_alignments_objective ON alignments(objective_id);

CREATE TABLE IF NOT EXISTS programs (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	status      TEXT,
	budget      TEXT,
	coordinator TEXT,
	start_date  TEXT,
	end_date    TEXT,
	entity_id   INTEGER REFERENCES public_entities(id),
	created_by  TEXT,
	created_at  TEXT,
	updated_at  TEXT
);

CREATE TABLE IF NOT EXISTS projects (
	id         INTEGER PRIMARY KEY,
	program_id INTEGER NOT NULL REFERENCES programs(id) ON DELETE CASCADE,
	code       TEXT,
	name       TEXT NOT NULL,
	status     TEXT,
	budget     TEXT,
	start_date TEXT,
	end_date   TEXT
);
CREATE INDEX IF NOT EXISTS idx_projects_program ON projects(program_id);

CREATE TABLE IF NOT EXISTS activities (
	id          INTEGER PRIMARY KEY,
	project_id  INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	responsible TEXT,
	status      TEXT,
	budget      TEXT,
	start_date  TEXT,
	end_date    TEXT
);
CREATE INDEX IF NOT EXISTS idx_activities_project ON activities(project_id);
`

// ---------------------------------------------------------------------------
// Column decoding
// ---------------------------------------------------------------------------

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// parseTime decodes a stored date or timestamp. Empty or malformed values
// yield nil so that reports show them as not available.
func parseTime(v sql.NullString) *time.Time {
	raw := strings.TrimSpace(v.String)
	if !v.Valid || raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
