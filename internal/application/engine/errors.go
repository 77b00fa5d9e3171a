package engine

import "errors"

var (
	// ErrEmptySequence reports a playback request with nothing to play.
	// The session is left unchanged.
	ErrEmptySequence = errors.New("empty sequence")

	// ErrHookUnavailable reports that the host's tick entry point is not
	// reachable yet. Callers are expected to retry with backoff.
	ErrHookUnavailable = errors.New("tick hook unavailable")
)
