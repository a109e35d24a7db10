// Package resilient wraps a single remote translation call with
// content-addressed caching, retry with exponential backoff, and a
// circuit breaker. The retry loop is a generic utility parameterized by
// a retryability predicate so any remote lookup can share it instead of
// duplicating backoff code per caller.
package resilient
