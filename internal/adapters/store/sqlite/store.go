// Package sqlite persists opportunities, linked project records, form
// schemas and submissions in a single SQLite database (pure-Go driver, no
// cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.OpportunityRepository = (*Store)(nil)
	_ ports.RecordConverter       = (*Store)(nil)
	_ ports.FormRepository        = (*FormStore)(nil)
	_ ports.SubmissionRepository  = (*FormStore)(nil)
	_ ports.HealthChecker         = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS opportunities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	pipeline TEXT NOT NULL,
	stage TEXT NOT NULL,
	amount TEXT NOT NULL DEFAULT '0',
	currency TEXT NOT NULL DEFAULT '',
	linked_record TEXT NOT NULL DEFAULT '',
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_opportunities_pipeline ON opportunities(pipeline);

CREATE TABLE IF NOT EXISTS activities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	parent_type TEXT NOT NULL,
	parent_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_activities_parent ON activities(parent_type, parent_id);

CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	opportunity_id INTEGER NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS form_schemas (
	id TEXT NOT NULL,
	version INTEGER NOT NULL,
	body TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (id, version)
);

CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	schema_id TEXT NOT NULL,
	schema_version INTEGER NOT NULL,
	answers TEXT NOT NULL,
	attachments TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_schema ON submissions(schema_id, schema_version);
`

// Store is the SQLite-backed repository. Safe for concurrent use; writes
// are serialized on a single connection.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dsn and applies the
// schema. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("sqlite: empty dsn")
	}
	if !strings.HasPrefix(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One connection keeps ":memory:" databases shared across calls and
	// serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{db: db}, nil
}

// FormStore is the form schema and submission view of a Store. It shares
// the Store's connection.
type FormStore struct {
	db *sql.DB
}

// Forms returns the form view of the store.
func (s *Store) Forms() *FormStore {
	return &FormStore{db: s.db}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging sqlite: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// inTx runs fn in a transaction, committing on success.
func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func notFound(kind string, key any, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", kind, key, domain.ErrNotFound)
	}
	return fmt.Errorf("querying %s %v: %w", kind, key, err)
}
