package usecase

import "errors"

var (
	// ErrInvalidInput is a request the caller must fix, such as a blank
	// match id or an unknown match status.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound covers both a missing match record and a live score no
	// provider had data for.
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable means no score provider is configured.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrUpstream means at least one provider failed and none had data.
	ErrUpstream = errors.New("upstream failure")
)
