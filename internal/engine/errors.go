package engine

import "errors"

// Runtime errors for slot execution.
var (
	// ErrWrongMode indicates a timed entry point on a scrubbed slot or
	// vice versa.
	ErrWrongMode = errors.New("engine: entry point does not match the slot drive mode")

	// ErrNotStarted indicates a tick on a slot that was never started.
	ErrNotStarted = errors.New("engine: slot not started")

	// ErrCancelled indicates a tick or scrub after cancellation was
	// observed.
	ErrCancelled = errors.New("engine: slot cancelled")

	// ErrNoElements indicates a slot constructed without target elements.
	ErrNoElements = errors.New("engine: slot has no target elements")
)
