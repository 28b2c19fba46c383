package store

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrStaleEpoch rejects a write computed against session state that
	// has since been reset. In-flight results from an abandoned run must
	// be discarded, not applied to the new session.
	ErrStaleEpoch = errors.New("stale session epoch")
)
