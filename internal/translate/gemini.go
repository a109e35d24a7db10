package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the Gemini model used for translation.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider for the Gemini API
type GeminiProvider struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *genai.Client
}

// NewGeminiProvider creates a new Gemini translation provider
func NewGeminiProvider(ctx context.Context, config *Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	model := config.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		apiKey:  config.APIKey,
		model:   model,
		timeout: timeout,
		client:  client,
	}, nil
}

// Translate translates a chunk of text to the target language
func (p *GeminiProvider) Translate(ctx context.Context, text, languageCode string) (string, error) {
	languageName, ok := LanguageName(languageCode)
	if !ok {
		return "", UnsupportedLanguageError(languageCode)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text(buildPrompt(text, languageName)),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.1),
		})
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", fmt.Errorf("%w: no translation in reply", ErrMalformedResponse)
	}
	return translated, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is configured
func (p *GeminiProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
