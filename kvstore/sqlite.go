package kvstore

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// SQLite is a Repository over an embedded SQLite database file
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the settings database at path
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Create settings table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// Get returns the stored value for key, or "" when the key is absent
func (s *SQLite) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key, replacing any previous value
func (s *SQLite) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// Delete removes key; removing an absent key is not an error
func (s *SQLite) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM settings WHERE key = ?", key)
	return err
}

// Ping verifies the underlying database connection
func (s *SQLite) Ping() error {
	return s.db.Ping()
}

// Close closes the underlying database
func (s *SQLite) Close() error {
	return s.db.Close()
}
