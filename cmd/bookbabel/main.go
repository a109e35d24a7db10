package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/bookbabel/internal/cache"
	"codeberg.org/snonux/bookbabel/internal/cli"
	"codeberg.org/snonux/bookbabel/internal/fetch"
	"codeberg.org/snonux/bookbabel/internal/pipeline"
	"codeberg.org/snonux/bookbabel/internal/resilient"
	"codeberg.org/snonux/bookbabel/internal/translate"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	// Handle --list-languages flag
	if flags.ListLanguages {
		for _, code := range translate.SupportedLanguages() {
			name, _ := translate.LanguageName(code)
			fmt.Printf("%-4s %s\n", code, name)
		}
		return nil
	}

	// Configuration errors abort before any chunk work begins
	if !translate.IsSupported(flags.Language) {
		return translate.UnsupportedLanguageError(flags.Language)
	}

	apiKey := cli.GetAPIKey(flags.Provider)
	if apiKey == "" {
		return fmt.Errorf("missing API key: set %s or api key in the config file",
			cli.APIKeyEnvVar(flags.Provider))
	}

	ctx := context.Background()

	provider, err := newProvider(ctx, flags, apiKey)
	if err != nil {
		return err
	}

	store, err := openStore(flags)
	if err != nil {
		return err
	}
	defer store.Close()

	caller := resilient.NewCaller(provider, store, resilient.Policy{
		MaxAttempts: flags.MaxRetries,
		BaseDelay:   flags.BaseDelay,
	})
	pipe := pipeline.New(caller, pipeline.Config{
		MaxChunkSize:      flags.MaxChunkSize,
		RequestsPerMinute: flags.RequestsPerMinute,
	})

	// Download the book (or reuse the local copy)
	text, err := fetch.NewFetcher(flags.URL, flags.BookCache).Fetch(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Document loaded (%d characters)\n", len(text))

	languageName, _ := translate.LanguageName(flags.Language)
	fmt.Printf("Starting translation to %s...\n", languageName)

	doc, report, err := pipe.TranslateDocument(ctx, text, flags.Language)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	if err := os.WriteFile(flags.Output, []byte(doc), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	report.PrintSummary()
	fmt.Printf("\nDone! Translated book saved to: %s\n", flags.Output)
	return nil
}

// newProvider builds the translation provider, with an optional
// fallback provider behind it.
func newProvider(ctx context.Context, flags *cli.Flags, apiKey string) (translate.Provider, error) {
	primary, err := translate.NewProvider(ctx, &translate.Config{
		Provider: flags.Provider,
		APIKey:   apiKey,
		Model:    flags.Model,
		Timeout:  flags.Timeout,
	})
	if err != nil {
		return nil, err
	}

	if flags.FallbackProvider == "" {
		return primary, nil
	}
	if flags.FallbackProvider == flags.Provider {
		return nil, fmt.Errorf("fallback provider must differ from the primary provider")
	}

	fallbackKey := cli.GetAPIKey(flags.FallbackProvider)
	if fallbackKey == "" {
		return nil, fmt.Errorf("missing API key for fallback provider: set %s",
			cli.APIKeyEnvVar(flags.FallbackProvider))
	}

	fallback, err := translate.NewProvider(ctx, &translate.Config{
		Provider: flags.FallbackProvider,
		APIKey:   fallbackKey,
		Timeout:  flags.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return translate.NewProviderWithFallback(primary, fallback), nil
}

// openStore builds the translation cache per the selected backend.
func openStore(flags *cli.Flags) (cache.Store, error) {
	switch flags.CacheBackend {
	case "json":
		return cache.OpenFileStore(flags.CacheFile)
	case "sqlite":
		return cache.OpenSQLiteStore(flags.CacheFile)
	case "none":
		return cache.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s (want json, sqlite or none)", flags.CacheBackend)
	}
}
