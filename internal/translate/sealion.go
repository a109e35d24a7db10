package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is the SEA-LION chat-completions endpoint. The API
	// is OpenAI-compatible, so the standard client works against it.
	DefaultBaseURL = "https://api.sea-lion.ai/v1"

	// DefaultModel is the SEA-LION translation model.
	DefaultModel = "aisingapore/Gemma-SEA-LION-v4-27B-IT"

	// DefaultTimeout bounds a single translation call. Large chunks can
	// take a while.
	DefaultTimeout = 60 * time.Second

	// maxCompletionTokens caps the reply size per chunk.
	maxCompletionTokens = 4000
)

// SEALionProvider implements Provider for the SEA-LION API
type SEALionProvider struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *openai.Client
}

// NewSEALionProvider creates a new SEA-LION translation provider
func NewSEALionProvider(config *Config) (*SEALionProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("SEA-LION API key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = baseURL

	return &SEALionProvider{
		apiKey:  config.APIKey,
		model:   model,
		timeout: timeout,
		client:  openai.NewClientWithConfig(clientConfig),
	}, nil
}

// Translate translates a chunk of text to the target language
func (p *SEALionProvider) Translate(ctx context.Context, text, languageCode string) (string, error) {
	languageName, ok := LanguageName(languageCode)
	if !ok {
		return "", UnsupportedLanguageError(languageCode)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(text, languageName),
			},
		},
		MaxTokens: maxCompletionTokens,
		// Low temperature for consistent translations
		Temperature: 0.1,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("SEA-LION API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no translation in reply", ErrMalformedResponse)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name
func (p *SEALionProvider) Name() string {
	return "sealion"
}

// IsAvailable checks if the provider is configured. No test call is
// made; that would burn quota.
func (p *SEALionProvider) IsAvailable() error {
	if p.apiKey == "" {
		return fmt.Errorf("SEA-LION API key not configured")
	}
	return nil
}
