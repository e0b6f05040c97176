package domain

import "errors"

var (
	ErrVoterNotFound     = errors.New("voter not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAlreadyVoted      = errors.New("voter has already voted")
	ErrDuplicateVoter    = errors.New("voter id already registered")
	// ErrInvalidCredentials is deliberately opaque: callers cannot tell
	// whether the identity or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrStoreUnavailable marks transient storage failures. The failed
	// operation left no partial state and is safe to retry.
	ErrStoreUnavailable = errors.New("storage temporarily unavailable")
	ErrInternal         = errors.New("internal server error")
)
