package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse marks a backend reply that is structurally broken
// (no choices, empty content). Retrying a malformed response wastes quota
// without benefit, so it is never retried.
var ErrMalformedResponse = errors.New("malformed API response")

// ErrUnsupportedLanguage marks a target language outside the supported
// set. Raised before any network activity.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// UnsupportedLanguageError builds the user-facing error for an unknown
// language code, listing the codes that would have worked.
func UnsupportedLanguageError(code string) error {
	return fmt.Errorf("%w %q (supported: %s)", ErrUnsupportedLanguage, code, strings.Join(SupportedLanguages(), ", "))
}

// IsRetryable reports whether a failed translation attempt is worth
// re-attempting. Transport errors, timeouts and HTTP error statuses are
// transient; a malformed response or an unsupported language cannot be
// fixed by trying again, and a cancelled context means the caller gave
// up.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrUnsupportedLanguage) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}
