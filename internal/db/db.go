// Package db opens the s4 journal database.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/VoxDroid/s4/internal/config"
)

// InitDB opens the journal at the configured location.
func InitDB() (*sql.DB, error) {
	dbPath, err := config.DBPath()
	if err != nil {
		return nil, err
	}
	return Open(dbPath)
}

// Open ensures the parent directory exists, opens the SQLite database at
// path and creates the schema if it does not exist.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer at a time; a single connection avoids SQLITE_BUSY between
	// pooled connections.
	db.SetMaxOpenConns(1)

	if err := ApplyMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
