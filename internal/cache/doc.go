// Package cache persists completed chunk translations keyed by target
// language and a content digest of the source text, so interrupted or
// repeated runs never pay for the same translation twice. The cache is a
// performance optimization only: a corrupt or missing cache file degrades
// to an empty cache and never fails a run.
package cache
