package container

// Queue is a FIFO queue backed by a circular slice that resizes as needed.
// The zero value is an empty queue ready for use.
type Queue[T any] struct {
	items []T
	head  int
	tail  int
	count int
}

// minQueueCap is the initial backing-slice size allocated on first Push.
const minQueueCap = 8

// Push appends v to the back of the queue.
func (q *Queue[T]) Push(v T) {
	if q.count == len(q.items) {
		q.grow()
	}
	q.items[q.tail] = v
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// Pop removes and returns the front element.
// Returns ErrEmpty if the queue holds no elements.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrEmpty
	}
	v := q.items[q.head]
	q.items[q.head] = zero // release reference for GC
	q.head = (q.head + 1) % len(q.items)
	q.count--
	return v, nil
}

// Front returns the front element without removing it.
// Returns ErrEmpty if the queue holds no elements.
func (q *Queue[T]) Front() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[q.head], nil
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int { return q.count }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.count == 0 }

// grow doubles the backing slice and unwraps the circular layout so the
// queue contents occupy the front of the new slice.
func (q *Queue[T]) grow() {
	size := len(q.items) * 2
	if size == 0 {
		size = minQueueCap
	}
	items := make([]T, size)
	if q.count > 0 {
		n := copy(items, q.items[q.head:])
		copy(items[n:], q.items[:q.tail])
	}
	q.items = items
	q.head = 0
	q.tail = q.count
}
