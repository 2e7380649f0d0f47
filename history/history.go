// Package history provides SQLite-backed storage for past invocations.
package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

var (
	// ErrInvalidLimit is returned by Recent when limit is not positive.
	ErrInvalidLimit = errors.New("history: limit must be positive")
	// ErrNotFound is returned by Delete when no entry has the given ID.
	ErrNotFound = errors.New("history: no such entry")
)

// Entry is one recorded invocation.
type Entry struct {
	ID        string
	Statement string
	Argv      []string
	At        time.Time
}

// Store records and lists invocations.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the history database at dir/history.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite3: %w", err)
	}
	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	seq       INTEGER PRIMARY KEY AUTOINCREMENT,
	id        TEXT NOT NULL UNIQUE,
	statement TEXT NOT NULL,
	argv      TEXT NOT NULL,
	at        INTEGER NOT NULL
);
`

func (s *Store) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate history: %w", err)
	}
	return nil
}

// Record stores one invocation of statement with its argument vector and
// returns the new entry.
func (s *Store) Record(statement string, argv []string) (Entry, error) {
	if argv == nil {
		argv = []string{}
	}
	data, err := json.Marshal(argv)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Statement: statement,
		Argv:      argv,
		At:        s.now().UTC(),
	}
	_, err = s.db.Exec(
		`INSERT INTO invocations (id, statement, argv, at) VALUES (?,?,?,?)`,
		e.ID, e.Statement, string(data), e.At.UnixNano(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record invocation: %w", err)
	}
	return e, nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	rows, err := s.db.Query(
		`SELECT id, statement, argv, at FROM invocations ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []Entry
	for rows.Next() {
		var (
			e    Entry
			argv string
			at   int64
		)
		if err := rows.Scan(&e.ID, &e.Statement, &argv, &at); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(argv), &e.Argv); err != nil {
			return nil, fmt.Errorf("decode argv of %s: %w", e.ID, err)
		}
		e.At = time.Unix(0, at).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes one entry by ID.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM invocations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear removes all entries.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM invocations`)
	return err
}
