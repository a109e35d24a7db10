package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key identifies one cached translation: the target language plus a
// digest of the exact source text. Identical text and language always
// produce the same key; any change to the text produces a different one.
type Key struct {
	Language string
	Digest   string
}

// NewKey computes the content-addressed key for a chunk of source text.
func NewKey(language, text string) Key {
	sum := sha256.Sum256([]byte(text))
	return Key{Language: language, Digest: hex.EncodeToString(sum[:])}
}

// String serializes the key for storage.
func (k Key) String() string {
	return fmt.Sprintf("%s:%s", k.Language, k.Digest)
}

// Store is a persistent mapping from translation keys to translated
// text. Implementations must make each Put durable before returning, so
// a killed process loses no completed work.
type Store interface {
	Get(key Key) (string, bool)
	Put(key Key, text string) error
	Len() int
	Close() error
}

// MemoryStore keeps translations in memory only. Used by tests and by
// runs with caching disabled.
type MemoryStore struct {
	entries map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Get retrieves a translation from the store.
func (m *MemoryStore) Get(key Key) (string, bool) {
	text, ok := m.entries[key.String()]
	return text, ok
}

// Put adds a translation to the store.
func (m *MemoryStore) Put(key Key, text string) error {
	m.entries[key.String()] = text
	return nil
}

// Len returns the number of cached translations.
func (m *MemoryStore) Len() int {
	return len(m.entries)
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
