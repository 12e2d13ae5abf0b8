package container

import "fmt"

// Bounded is a fixed-capacity circular FIFO buffer.
//
// Unlike [Queue], a Bounded buffer never grows: Enqueue against a full
// buffer returns ErrFull and drops the offered element. This makes it
// suitable for slots with a hard physical limit, such as platform berths.
type Bounded[T any] struct {
	buf  []T
	head int // index of front element, -1 when empty
	tail int // index of last element, -1 when empty
	size int
}

// NewBounded creates an empty bounded buffer with the given capacity.
// It panics if capacity is not positive.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("container: bounded capacity must be positive, got %d", capacity))
	}
	return &Bounded[T]{
		buf:  make([]T, capacity),
		head: -1,
		tail: -1,
	}
}

// Enqueue appends v to the back of the buffer.
// Returns ErrFull when the buffer is at capacity; v is dropped.
func (b *Bounded[T]) Enqueue(v T) error {
	if b.size == len(b.buf) {
		return ErrFull
	}
	if b.head == -1 {
		b.head = 0
	}
	b.tail = (b.tail + 1) % len(b.buf)
	b.buf[b.tail] = v
	b.size++
	return nil
}

// Dequeue removes and returns the front element.
// Returns ErrEmpty if the buffer holds no elements.
func (b *Bounded[T]) Dequeue() (T, error) {
	var zero T
	if b.size == 0 {
		return zero, ErrEmpty
	}
	v := b.buf[b.head]
	b.buf[b.head] = zero
	if b.head == b.tail {
		// Last element removed: reset to the empty state.
		b.head = -1
		b.tail = -1
	} else {
		b.head = (b.head + 1) % len(b.buf)
	}
	b.size--
	return v, nil
}

// Front returns the front element without removing it.
// Returns ErrEmpty if the buffer holds no elements.
func (b *Bounded[T]) Front() (T, error) {
	if b.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return b.buf[b.head], nil
}

// Len returns the number of buffered elements.
func (b *Bounded[T]) Len() int { return b.size }

// Cap returns the fixed capacity.
func (b *Bounded[T]) Cap() int { return len(b.buf) }

// Full reports whether the buffer is at capacity.
func (b *Bounded[T]) Full() bool { return b.size == len(b.buf) }

// Empty reports whether the buffer holds no elements.
func (b *Bounded[T]) Empty() bool { return b.size == 0 }
