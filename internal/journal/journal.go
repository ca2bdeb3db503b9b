// Package journal records install and uninstall events. The journal is
// informational: listing and removal always scan the registry directories.
package journal

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/VoxDroid/s4/internal/db"
	"github.com/VoxDroid/s4/internal/errors"
)

// Action is what happened to an entry.
type Action string

// Actions
const (
	ActionInstall   Action = "install"
	ActionUninstall Action = "uninstall"
)

// Event is one journal row.
type Event struct {
	ID          int64
	Action      Action
	Registry    string
	Type        string
	Name        string
	Source      string
	Destination string
	CreatedAt   time.Time
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	Registry string
	Name     string
	Limit    int
}

// Repository stores events in SQLite.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Open opens the journal database at path.
func Open(path string) (*Repository, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrJournal, "open journal %s", path)
	}
	return NewRepository(conn), nil
}

// Record inserts e and returns its ID. CreatedAt is set when zero.
func (r *Repository) Record(e Event) (int64, error) {
	if strings.TrimSpace(e.Name) == "" {
		return 0, errors.New(errors.ErrJournal, "event name cannot be empty")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now()
	}
	res, err := r.db.Exec(`INSERT INTO install_events (action, registry, install_type, name, source, destination, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(e.Action), e.Registry, nullIfEmpty(e.Type), e.Name, nullIfEmpty(e.Source), e.Destination,
		e.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrJournal, "insert event")
	}
	return res.LastInsertId()
}

// List returns events matching f, newest first.
func (r *Repository) List(f Filter) ([]Event, error) {
	var (
		where []string
		args  []interface{}
	)
	if f.Registry != "" {
		where = append(where, "registry = ?")
		args = append(args, f.Registry)
	}
	if f.Name != "" {
		where = append(where, "name = ? COLLATE NOCASE")
		args = append(args, f.Name)
	}
	q := "SELECT id, action, registry, install_type, name, source, destination, created_at FROM install_events"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"
	if f.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrJournal, "query events")
	}
	defer func() { _ = rows.Close() }()

	var out []Event
	for rows.Next() {
		var (
			e               Event
			action, created string
			typ, source     sql.NullString
		)
		if err := rows.Scan(&e.ID, &action, &e.Registry, &typ, &e.Name, &source, &e.Destination, &created); err != nil {
			return nil, errors.Wrap(err, errors.ErrJournal, "scan event")
		}
		e.Action = Action(action)
		e.Type = typ.String
		e.Source = source.String
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			e.CreatedAt = ts
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrJournal, "read events")
	}
	return out, nil
}

// Close closes the underlying DB connection used by the Repository.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
