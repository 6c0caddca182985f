package models

import "errors"

// Pipeline failure kinds. Handlers match on these with errors.Is to pick the
// HTTP status, so every error leaving a service should wrap exactly one of
// them.
var (
	// ErrInputMissing means no media was supplied; caught before any external call.
	ErrInputMissing = errors.New("no presentation media supplied")

	// ErrUpstreamFailure means the AI call itself failed or its stream ended abnormally.
	ErrUpstreamFailure = errors.New("ai capability call failed")

	// ErrMalformedResponse means the assembled response failed schema or shape
	// validation. Such payloads are never persisted.
	ErrMalformedResponse = errors.New("malformed ai response")

	// ErrSelfReported means the model itself flagged the input as unusable. The
	// record is structurally valid and kept for audit, but is never scored.
	ErrSelfReported = errors.New("model reported the input as unusable")

	// ErrPersistenceFailure means a repository read or write failed.
	ErrPersistenceFailure = errors.New("persistence failure")

	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")
)
