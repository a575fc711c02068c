// Package sqlite implements the storage backend on an embedded SQLite
// database.
//
// The schema is a single key-value table. That looks like SQL overkill for a
// blob store, but it buys durability guarantees (WAL, fsync discipline) that
// a plain file write does not give us, and it is the same pure-Go driver
// stack (modernc.org/sqlite, no CGo) used everywhere else in this codebase's
// lineage, so cross-compilation stays painless.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"

	"github.com/ruilin/inspiration-space/internal/storage"
)

// DB wraps a sql.DB connection pool and implements storage.Backend.
type DB struct {
	conn *sql.DB
}

// Compile-time check that *DB satisfies the backend contract.
var _ storage.Backend = (*DB)(nil)

// New opens (or creates) the database at dbPath and prepares the schema.
// Pass ":memory:" for an in-memory database, which is what the tests use.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// sql.Open only creates the pool; Ping forces a real connection so a bad
	// path or permission problem surfaces here, not on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL allows concurrent reads while a write is in progress. Persistence
	// runs on background goroutines, so readers must not block behind it.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}
	return db, nil
}

// Close closes the connection pool, flushing the WAL and releasing the file
// lock. Callers should defer this right after New.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating kv table: %w", err)
	}
	return nil
}

// Get returns the blob stored at key, or storage.ErrKeyNotFound.
func (db *DB) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := db.conn.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", storage.ErrKeyNotFound
		}
		return "", fmt.Errorf("sqlite: getting key %s: %w", key, err)
	}
	return value, nil
}

// Set writes value at key, replacing any previous value wholesale.
func (db *DB) Set(ctx context.Context, key, value string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("sqlite: setting key %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value at key. Missing keys are not an error.
func (db *DB) Remove(ctx context.Context, key string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("sqlite: removing key %s: %w", key, err)
	}
	return nil
}

// Clear wipes the whole namespace.
func (db *DB) Clear(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return fmt.Errorf("sqlite: clearing store: %w", err)
	}
	return nil
}
