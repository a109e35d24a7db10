// Package chunk splits a plain-text document into bounded-size segments
// that respect paragraph and sentence boundaries, so each segment can be
// submitted to the translation API as one unit without cutting text
// mid-sentence.
package chunk
