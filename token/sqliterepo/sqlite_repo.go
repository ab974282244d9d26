package sqliterepo

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/multierr"
	_ "modernc.org/sqlite"

	"github.com/jrsteele09/ayursetu-client/token"
)

var _ token.Repo = (*SQLiteTokenRepo)(nil)

// SQLiteTokenRepo stores the key/value slots in a local SQLite database.
type SQLiteTokenRepo struct {
	db        *sql.DB
	writeLock sync.Mutex // sqlite does not support concurrent writes
}

// NewSQLiteTokenRepo opens (creating if needed) the database at path.
func NewSQLiteTokenRepo(path string) (*SQLiteTokenRepo, error) {
	if path == "" {
		return nil, fmt.Errorf("token store database path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("mkdir token store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, multierr.Append(fmt.Errorf("ping db: %w", err), db.Close())
	}

	// A single connection keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)

	if err := initializeDB(db); err != nil {
		return nil, multierr.Append(fmt.Errorf("initialize db: %w", err), db.Close())
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, multierr.Append(fmt.Errorf("set busy timeout: %w", err), db.Close())
	}

	return &SQLiteTokenRepo{db: db}, nil
}

func initializeDB(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS client_storage (
			key        TEXT    PRIMARY KEY,
			value      TEXT    NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *SQLiteTokenRepo) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM client_storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", token.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select value: %w", err)
	}
	return value, nil
}

func (r *SQLiteTokenRepo) Set(key, value string) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	_, err := r.db.Exec(`
		INSERT INTO client_storage (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert value: %w", err)
	}
	return nil
}

func (r *SQLiteTokenRepo) Delete(key string) error {
	r.writeLock.Lock()
	defer r.writeLock.Unlock()

	if _, err := r.db.Exec("DELETE FROM client_storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete value: %w", err)
	}
	return nil
}

func (r *SQLiteTokenRepo) Close() error {
	return r.db.Close()
}
