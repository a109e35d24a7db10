// Package fetch downloads the source document over HTTP and caches the
// raw text on disk, so repeated runs against the same book never hit the
// network twice.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultTimeout bounds the document download. Some Gutenberg mirrors
// are slow.
const DefaultTimeout = 30 * time.Second

// Fetcher downloads a document and caches it on disk.
type Fetcher struct {
	URL       string
	CacheFile string
	client    *http.Client
}

// NewFetcher creates a fetcher for the given URL, caching the document
// at cacheFile.
func NewFetcher(url, cacheFile string) *Fetcher {
	return &Fetcher{
		URL:       url,
		CacheFile: cacheFile,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Fetch returns the document text, from the cache file when present,
// otherwise by downloading and caching it.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	if data, err := os.ReadFile(f.CacheFile); err == nil {
		fmt.Printf("Using cached document from %s\n", f.CacheFile)
		return string(data), nil
	}

	fmt.Printf("Downloading document from %s...\n", f.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to download document: HTTP %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read document body: %w", err)
	}

	if err := os.WriteFile(f.CacheFile, data, 0644); err != nil {
		return "", fmt.Errorf("failed to cache document: %w", err)
	}
	fmt.Printf("Document downloaded and cached to %s\n", f.CacheFile)

	return string(data), nil
}
