package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrUpstream covers transport failures and unexpected answers from the data provider.
	ErrUpstream = errors.New("upstream request failed")
)
