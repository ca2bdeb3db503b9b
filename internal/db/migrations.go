package db

import (
	"database/sql"
	_ "embed"
	"fmt"

	// _ import for sqlite driver registration
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ApplyMigrations applies the embedded schema SQL to the database and
// performs lightweight post-creation migrations (adding new columns when needed).
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if err := ensureEventColumns(db); err != nil {
		return fmt.Errorf("migrate install_events: %w", err)
	}
	return nil
}

// optionalEventColumns were added after the first journal release.
var optionalEventColumns = []string{"install_type", "source"}

// ensureEventColumns checks for optional columns and adds them when missing.
func ensureEventColumns(db *sql.DB) error {
	cols, err := tableColumns(db, "install_events")
	if err != nil {
		return err
	}
	for _, c := range optionalEventColumns {
		if cols[c] {
			continue
		}
		if _, err := db.Exec(fmt.Sprintf("ALTER TABLE install_events ADD COLUMN %s TEXT", c)); err != nil {
			return err
		}
	}
	return nil
}

func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var name string
		var ctype string
		var notnull int
		var dflt interface{}
		var pk int
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
