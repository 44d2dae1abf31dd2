package domain

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrStorageUnavailable means the identity cookie cannot be read or
	// written. Every toggle fails closed until storage is restored.
	ErrStorageUnavailable = errors.New("cookie storage unavailable")

	// ErrToggleFailed means the toggle RPC did not complete. The store
	// guarantees nothing changed server-side; callers roll back optimistic
	// state and must not blindly retry.
	ErrToggleFailed = errors.New("toggle failed")

	ErrRateLimited = errors.New("rate limit exceeded")
)
