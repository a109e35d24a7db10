package translate

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"
)

// supportedLanguages maps target language codes to their English names,
// as accepted by the SEA-LION API.
var supportedLanguages = map[string]string{
	"id":  "Indonesian",
	"fil": "Filipino",
	"ta":  "Tamil",
	"th":  "Thai",
	"vi":  "Vietnamese",
}

// SupportedLanguages returns the supported language codes in sorted
// order.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(supportedLanguages))
	for code := range supportedLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// LanguageName returns the English name for a language code.
func LanguageName(code string) (string, bool) {
	name, ok := supportedLanguages[code]
	return name, ok
}

// IsSupported reports whether a language code is in the supported set.
func IsSupported(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}

// Provider defines the interface for translation backends
type Provider interface {
	// Translate translates text to the target language
	Translate(ctx context.Context, text, languageCode string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string // Provider name: "sealion" or "gemini"
	APIKey   string
	BaseURL  string // API endpoint, defaults per provider
	Model    string // Model name, defaults per provider
	Timeout  time.Duration
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider: "sealion",
		Timeout:  DefaultTimeout,
	}
}

// NewProvider creates the appropriate translation provider based on
// configuration
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "sealion":
		return NewSEALionProvider(config)
	case "gemini":
		return NewGeminiProvider(ctx, config)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// buildPrompt constructs the translation prompt. Low ceremony on
// purpose: the instructions ask for the translation only, so any
// surrounding commentary from the model is a provider bug we would
// rather surface than parse around.
func buildPrompt(text, languageName string) string {
	return fmt.Sprintf(`Please translate the following English text to %s.
Maintain the original formatting, paragraph structure, and preserve any special characters or punctuation.
Only return the translated text without any additional commentary.

Text to translate:
%s`, languageName, text)
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to
// secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Translate tries the primary provider first, falls back to secondary on
// error
func (p *ProviderWithFallback) Translate(ctx context.Context, text, languageCode string) (string, error) {
	result, err := p.primary.Translate(ctx, text, languageCode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Primary provider (%s) failed: %v. Falling back to %s\n",
			p.primary.Name(), err, p.fallback.Name())
		return p.fallback.Translate(ctx, text, languageCode)
	}
	return result, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}
