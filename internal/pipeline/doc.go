// Package pipeline drives a whole-document translation: chunk the text,
// translate each chunk in order through the resilient caller under a
// requests-per-minute limit, substitute a placeholder for chunks that
// fail permanently, and join the results back into one document. The
// unit of failure isolation is a single chunk; one lost paragraph never
// aborts a run.
package pipeline
