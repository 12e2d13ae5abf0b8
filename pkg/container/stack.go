package container

// Stack is a slice-backed LIFO stack.
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	items []T
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// Returns ErrEmpty if the stack holds no elements.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	v := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero // release reference for GC
	s.items = s.items[:len(s.items)-1]
	return v, nil
}

// Top returns the top element without removing it.
// Returns ErrEmpty if the stack holds no elements.
func (s *Stack[T]) Top() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
