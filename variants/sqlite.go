package variants

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore backs the variant store server. Profiles are stored as JSON
// documents keyed by (library, icon); SQLite's own locking serializes
// concurrent writers.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and if needed creates) the database at path.
// Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The modernc driver allows one writer at a time per connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS profiles (
			library TEXT NOT NULL,
			icon    TEXT NOT NULL,
			data    TEXT NOT NULL,
			PRIMARY KEY (library, icon)
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) List(library string) ([]Profile, error) {
	rows, err := s.db.Query(
		`SELECT data FROM profiles WHERE library = ? ORDER BY icon`, library)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		var p Profile
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("decode profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Get(library, icon string) (Profile, error) {
	var data string
	err := s.db.QueryRow(
		`SELECT data FROM profiles WHERE library = ? AND icon = ?`, library, icon).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, icon)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

func (s *SQLiteStore) Put(library string, p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO profiles (library, icon, data) VALUES (?, ?, ?)
		ON CONFLICT (library, icon) DO UPDATE SET data = excluded.data`,
		library, p.Icon, string(data))
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(library, icon string) error {
	if _, err := s.db.Exec(
		`DELETE FROM profiles WHERE library = ? AND icon = ?`, library, icon); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Ping() error { return s.db.Ping() }

func (s *SQLiteStore) Close() error { return s.db.Close() }
