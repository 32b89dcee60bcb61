package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors, which propagate from
// the mail source, embedding backend or corpus store unwrapped.
var (
	// ErrEmptyCorpus indicates an operation needs stored emails but the
	// corpus holds none. Retrieval degrades silently to an empty result;
	// style analysis surfaces this error.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthRequired indicates the mail source requires authentication
	// but no stored token was found.
	ErrAuthRequired = errors.New("authentication required")

	// ErrTokenRefreshFailed indicates a token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")
)
