package container

// Heap is an array-backed binary min-heap ordered by a caller-supplied
// comparison function.
//
// Heap does not support decrease-key: once pushed, an element's priority
// is fixed. Callers that need to re-prioritize (such as a shortest-path
// frontier) push a fresh entry and discard the stale one when it surfaces.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewHeap creates an empty heap ordered by less.
// It panics if less is nil.
func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic("container: heap comparison function must not be nil")
	}
	return &Heap[T]{less: less}
}

// Push inserts v, restoring the heap invariant by sifting up.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the minimum element. The root is swapped with
// the last element, the slice shrinks, and the new root sifts down.
// Returns ErrEmpty if the heap holds no elements.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmpty
	}
	n := len(h.items)
	v := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return v, nil
}

// Peek returns the minimum element without removing it.
// Returns ErrEmpty if the heap holds no elements.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return h.items[0], nil
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.items) == 0 }

// Items returns a copy of the underlying slice in heap order, not sorted
// order. Useful for non-destructive listings that re-heap the copy.
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && h.less(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < n && h.less(h.items[right], h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
