// Package translate provides chunk translation through remote LLM
// backends. The SEA-LION API is the primary provider; the Gemini API is
// available as an alternative or fallback. Providers are opaque remote
// functions from (text, target language) to translated text and report
// malformed responses distinctly from transport failures so callers can
// decide what is worth retrying.
package translate
