package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps translations in a SQLite database. Better suited
// than the JSON file for whole-book runs, where rewriting the full cache
// after every chunk gets expensive.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens or creates a SQLite cache database at the given
// path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS translations (
		key         TEXT PRIMARY KEY,
		translation TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get retrieves a translation from the store.
func (s *SQLiteStore) Get(key Key) (string, bool) {
	var text string
	err := s.db.QueryRow("SELECT translation FROM translations WHERE key = ?", key.String()).Scan(&text)
	if err != nil {
		return "", false
	}
	return text, true
}

// Put adds a translation. SQLite makes the write durable before Exec
// returns.
func (s *SQLiteStore) Put(key Key, text string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO translations (key, translation) VALUES (?, ?)", key.String(), text)
	if err != nil {
		return fmt.Errorf("failed to store translation: %w", err)
	}
	return nil
}

// Len returns the number of cached translations.
func (s *SQLiteStore) Len() int {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM translations").Scan(&n); err != nil {
		return 0
	}
	return n
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
