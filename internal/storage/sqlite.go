//go:build cgo
// +build cgo

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"
)

// SQLiteStore backs the KV contract with a single-table SQLite database
// via libSQL. The server binary uses it so its data survives in one file
// that external tooling can inspect.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and
// prepares the kv table.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// libSQL rejects Exec for PRAGMAs that return rows; QueryContext with
	// a drained result handles both kinds uniformly.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		rows, err := db.QueryContext(ctx, p)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("executing %s: %w", p, err)
		}
		rows.Close()
	}

	const schema = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *SQLiteStore) Set(key string, value []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

func (s *SQLiteStore) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
