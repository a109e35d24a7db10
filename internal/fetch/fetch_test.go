package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetch_DownloadsAndCaches(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("Book text."))
	}))
	defer server.Close()

	cacheFile := filepath.Join(t.TempDir(), "cached_book.txt")
	f := NewFetcher(server.URL, cacheFile)

	text, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if text != "Book text." {
		t.Errorf("Expected 'Book text.', got %q", text)
	}

	if _, err := os.Stat(cacheFile); err != nil {
		t.Errorf("Expected cache file to exist: %v", err)
	}

	// Second fetch is served from the cache file
	text, err = f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Cached fetch failed: %v", err)
	}
	if text != "Book text." {
		t.Errorf("Expected cached text, got %q", text)
	}
	if hits != 1 {
		t.Errorf("Expected 1 server hit, got %d", hits)
	}
}

func TestFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	cacheFile := filepath.Join(t.TempDir(), "cached_book.txt")
	f := NewFetcher(server.URL, cacheFile)

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("Expected error for HTTP 404")
	}
	if _, err := os.Stat(cacheFile); !os.IsNotExist(err) {
		t.Error("Failed download must not leave a cache file")
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	f := NewFetcher("http://127.0.0.1:1", filepath.Join(t.TempDir(), "cache.txt"))

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("Expected error for unreachable server")
	}
}
