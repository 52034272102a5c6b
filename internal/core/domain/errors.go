package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoMatchParams indicates FindMatches was called without any
	// identifying parameter. Surfaced immediately, never retried.
	ErrNoMatchParams = errors.New("at least one match parameter is required")

	// ErrEmptyQuery indicates a full-text search with no query text.
	ErrEmptyQuery = errors.New("search query cannot be empty")

	// ErrRateLimited indicates the CRM API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
