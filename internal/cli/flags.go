package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	Language      string
	Output        string
	URL           string
	BookCache     string
	ListLanguages bool

	// Chunking flags
	MaxChunkSize int

	// Resilience flags
	MaxRetries        int
	BaseDelay         time.Duration
	RequestsPerMinute int
	Timeout           time.Duration

	// Cache flags
	CacheBackend string
	CacheFile    string

	// Provider flags
	Provider         string
	FallbackProvider string
	Model            string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Language:          "id",
		Output:            "translated_book.txt",
		URL:               "https://www.gutenberg.org/cache/epub/16317/pg16317.txt",
		BookCache:         "cached_book.txt",
		MaxChunkSize:      2000,
		MaxRetries:        3,
		BaseDelay:         2 * time.Second,
		RequestsPerMinute: 10,
		Timeout:           60 * time.Second,
		CacheBackend:      "json",
		CacheFile:         "translation_cache.json",
		Provider:          "sealion",
	}
}
