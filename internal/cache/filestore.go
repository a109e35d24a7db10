package cache

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileStore persists translations as a single JSON object mapping
// serialized keys to translated text. The file is human-inspectable,
// loaded in full when the store is opened, and rewritten in full after
// every Put.
type FileStore struct {
	path    string
	entries map[string]string
}

// OpenFileStore loads the cache file at path, creating an empty store if
// the file does not exist. A file that cannot be parsed is reported as a
// warning and replaced with an empty cache on the next Put.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		entries: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not parse cache file %s, starting with empty cache: %v\n", path, err)
		s.entries = make(map[string]string)
	}
	return s, nil
}

// Get retrieves a translation from the store.
func (s *FileStore) Get(key Key) (string, bool) {
	text, ok := s.entries[key.String()]
	return text, ok
}

// Put adds a translation and rewrites the cache file before returning.
func (s *FileStore) Put(key Key, text string) error {
	s.entries[key.String()] = text
	return s.flush()
}

// Len returns the number of cached translations.
func (s *FileStore) Len() int {
	return len(s.entries)
}

// Close flushes the store a final time.
func (s *FileStore) Close() error {
	return s.flush()
}

func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}
