package container

import "errors"

var (
	// ErrEmpty is returned when popping or peeking a container that holds
	// no elements. Callers that probe with Len or Empty first never see it.
	ErrEmpty = errors.New("container is empty")

	// ErrFull is returned by [Bounded.Enqueue] when the buffer is at
	// capacity. The offered element is dropped; the caller may retry after
	// draining.
	ErrFull = errors.New("container is full")
)
