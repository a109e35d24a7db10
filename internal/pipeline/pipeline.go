package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"codeberg.org/snonux/bookbabel/internal/chunk"
	"codeberg.org/snonux/bookbabel/internal/resilient"
	"codeberg.org/snonux/bookbabel/internal/translate"
)

// Placeholder is substituted for a chunk whose translation failed even
// after all retries, preserving document structure and chunk count.
const Placeholder = "[Translation failed]"

// Config holds pipeline tuning knobs.
type Config struct {
	MaxChunkSize      int
	RequestsPerMinute int
}

// Report summarizes one document translation run.
type Report struct {
	Chunks       int
	Translated   int
	Failed       int
	CacheHits    int
	APICalls     int
	FailedCalls  int
	CacheEntries int
	Elapsed      time.Duration
}

// Pipeline translates a document chunk by chunk, strictly sequentially.
type Pipeline struct {
	caller  *resilient.Caller
	limiter *rateLimiter
	config  Config
}

// New creates a pipeline around a resilient caller. The pipeline's rate
// limiter is installed as the caller's gate so cached chunks skip the
// rate-limit wait entirely.
func New(caller *resilient.Caller, config Config) *Pipeline {
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = chunk.DefaultMaxChunkSize
	}

	limiter := newRateLimiter(config.RequestsPerMinute)
	caller.Gate = limiter.wait

	return &Pipeline{
		caller:  caller,
		limiter: limiter,
		config:  config,
	}
}

// TranslateDocument translates text into the target language and
// returns the joined document plus run statistics. An unsupported
// language fails before any chunk work; a chunk that fails permanently
// is replaced with Placeholder and the run continues.
func (p *Pipeline) TranslateDocument(ctx context.Context, text, languageCode string) (string, Report, error) {
	if !translate.IsSupported(languageCode) {
		return "", Report{}, translate.UnsupportedLanguageError(languageCode)
	}

	start := time.Now()
	chunks := chunk.Split(text, p.config.MaxChunkSize)

	report := Report{Chunks: len(chunks)}
	translated := make([]string, 0, len(chunks))

	for _, c := range chunks {
		fmt.Printf("Translating chunk %d/%d (%d characters)...\n", c.Index+1, len(chunks), c.Len())

		result, hit, err := p.caller.Call(ctx, c.Text, languageCode)
		switch {
		case err != nil && ctx.Err() != nil:
			// Process-level cancellation, not a chunk failure. Completed
			// chunks are already in the cache.
			return "", report, err
		case err != nil:
			fmt.Fprintf(os.Stderr, "Error translating chunk %d: %v\n", c.Index+1, err)
			fmt.Fprintln(os.Stderr, "Continuing with remaining chunks...")
			translated = append(translated, Placeholder)
			report.Failed++
		default:
			translated = append(translated, result)
			report.Translated++
			if hit {
				report.CacheHits++
			}
		}
	}

	stats := p.caller.Stats()
	report.APICalls = stats.TotalCalls
	report.FailedCalls = stats.FailedCalls
	report.CacheEntries = stats.CacheEntries
	report.Elapsed = time.Since(start)

	return strings.Join(translated, chunk.Separator), report, nil
}

// PrintSummary writes the run summary in the usual format.
func (r Report) PrintSummary() {
	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Chunks: %d (translated: %d, failed: %d, cache hits: %d)\n",
		r.Chunks, r.Translated, r.Failed, r.CacheHits)
	fmt.Printf("API calls: %d (failed: %d)\n", r.APICalls, r.FailedCalls)
	fmt.Printf("Cache entries: %d\n", r.CacheEntries)
	fmt.Printf("Time taken: %s\n", r.Elapsed.Round(time.Second))
	fmt.Printf("===========================\n")
}
