package cache

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	defer s.Close()

	k := NewKey("vi", "A chunk.")
	if _, ok := s.Get(k); ok {
		t.Error("Expected miss on empty store")
	}

	if err := s.Put(k, "một đoạn"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	text, ok := s.Get(k)
	if !ok {
		t.Fatal("Expected hit after Put")
	}
	if text != "một đoạn" {
		t.Errorf("Expected 'một đoạn', got %q", text)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", s.Len())
	}
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	defer s.Close()

	k := NewKey("id", "text")
	if err := s.Put(k, "first"); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(k, "second"); err != nil {
		t.Fatal(err)
	}

	text, _ := s.Get(k)
	if text != "second" {
		t.Errorf("Expected overwrite to 'second', got %q", text)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 entry after overwrite, got %d", s.Len())
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	k := NewKey("ta", "A paragraph.")

	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore failed: %v", err)
	}
	if err := s.Put(k, "translated"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	if _, ok := reopened.Get(k); !ok {
		t.Error("Entry lost across reopen")
	}
}
