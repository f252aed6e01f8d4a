package generator

import "errors"

var (
	// ErrLayoutDeadEnd means the walk reached a room with no free
	// neighbouring cell. The attempt is discarded and restarted.
	ErrLayoutDeadEnd = errors.New("layout dead end")

	// ErrAttemptsExhausted means every allowed attempt hit a dead end
	ErrAttemptsExhausted = errors.New("layout attempts exhausted")
)
