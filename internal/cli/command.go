package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/bookbabel/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bookbabel",
		Short: "Book translator for Southeast Asian languages",
		Long: `bookbabel downloads a book from Project Gutenberg and translates it
to a Southeast Asian language using the SEA-LION API.

Translations are cached per chunk, so an interrupted run loses no
completed work and a re-run only pays for what is missing.

Examples:
  bookbabel                              # Translate the default book to Indonesian
  bookbabel --lang th -o buku.txt        # Translate to Thai
  bookbabel --url https://... --lang vi  # Translate another book to Vietnamese`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.bookbabel.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Language, "lang", "l", flags.Language, "Target language code (see --list-languages)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", flags.Output, "Output file for the translated book")
	cmd.Flags().StringVar(&flags.URL, "url", flags.URL, "URL of the book to translate")
	cmd.Flags().StringVar(&flags.BookCache, "book-cache", flags.BookCache, "Local cache file for the downloaded book")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List supported target languages")

	cmd.Flags().IntVar(&flags.MaxChunkSize, "chunk-size", flags.MaxChunkSize, "Maximum chunk size in characters")

	cmd.Flags().IntVar(&flags.MaxRetries, "max-retries", flags.MaxRetries, "Maximum attempts per chunk")
	cmd.Flags().DurationVar(&flags.BaseDelay, "base-delay", flags.BaseDelay, "Base delay for exponential backoff between retries")
	cmd.Flags().IntVar(&flags.RequestsPerMinute, "rpm", flags.RequestsPerMinute, "Requests-per-minute ceiling for the translation API")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Per-call timeout for translation requests")

	cmd.Flags().StringVar(&flags.CacheBackend, "cache-backend", flags.CacheBackend, "Translation cache backend: json, sqlite or none")
	cmd.Flags().StringVar(&flags.CacheFile, "cache-file", flags.CacheFile, "Translation cache file path")

	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: sealion or gemini")
	cmd.Flags().StringVar(&flags.FallbackProvider, "fallback-provider", "", "Optional fallback provider when the primary fails")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Override the provider's default model")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.lang", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.fallback_provider", cmd.Flags().Lookup("fallback-provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.chunk_size", cmd.Flags().Lookup("chunk-size"))
	viper.BindPFlag("translate.rpm", cmd.Flags().Lookup("rpm"))
	viper.BindPFlag("translate.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("retry.max", cmd.Flags().Lookup("max-retries"))
	viper.BindPFlag("retry.base_delay", cmd.Flags().Lookup("base-delay"))
	viper.BindPFlag("cache.backend", cmd.Flags().Lookup("cache-backend"))
	viper.BindPFlag("cache.file", cmd.Flags().Lookup("cache-file"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("source.url", cmd.Flags().Lookup("url"))
	viper.BindPFlag("source.book_cache", cmd.Flags().Lookup("book-cache"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".bookbabel" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bookbabel")
	}

	// Environment variables
	viper.SetEnvPrefix("BOOKBABEL")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// APIKeyEnvVar returns the environment variable checked for a
// provider's credential.
func APIKeyEnvVar(provider string) string {
	switch provider {
	case "gemini":
		return "GEMINI_API_KEY"
	default:
		return "SEA_LION_API_KEY"
	}
}

// GetAPIKey retrieves a provider's API key from environment or config
func GetAPIKey(provider string) string {
	// First check environment variable
	if key := os.Getenv(APIKeyEnvVar(provider)); key != "" {
		return key
	}

	// Then check config file
	switch provider {
	case "gemini":
		return viper.GetString("api.gemini_key")
	default:
		return viper.GetString("api.sealion_key")
	}
}
