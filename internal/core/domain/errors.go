package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source strategy or content type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrFetchFailed indicates the article collection could not be fetched.
	// It is the only error surfaced by the loader.
	ErrFetchFailed = errors.New("article collection fetch failed")

	// ErrNotLoaded indicates the collection has not settled yet.
	ErrNotLoaded = errors.New("articles not loaded")

	// ErrRateLimited indicates the content API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthInvalid indicates the content API rejected the access token.
	ErrAuthInvalid = errors.New("authentication invalid")
)
