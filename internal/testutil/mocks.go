package testutil

import (
	"context"
	"fmt"
)

// MockProvider mocks a translation provider. It records every call and
// returns canned translations or errors keyed by the source text.
type MockProvider struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// NewMockProvider creates an empty mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: make(map[string]string),
		Errors:       make(map[string]error),
	}
}

// Translate mocks translating text
func (m *MockProvider) Translate(ctx context.Context, text, languageCode string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Translate: %s (-> %s)", text, languageCode))

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// IsAvailable reports the mock as always available
func (m *MockProvider) IsAvailable() error {
	return nil
}

// CallCount returns the number of Translate calls so far
func (m *MockProvider) CallCount() int {
	return len(m.Calls)
}
