package container

import (
	"errors"
	"testing"
)

func TestStackLIFO(t *testing.T) {
	var s Stack[int]

	if !s.Empty() {
		t.Fatal("new stack should be empty")
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Pop on empty = %v, want ErrEmpty", err)
	}
	if _, err := s.Top(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Top on empty = %v, want ErrEmpty", err)
	}

	for _, v := range []int{1, 2, 3} {
		s.Push(v)
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}

	if top, err := s.Top(); err != nil || top != 3 {
		t.Errorf("Top = %d, %v, want 3, nil", top, err)
	}
	for want := 3; want >= 1; want-- {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if got != want {
			t.Errorf("Pop = %d, want %d", got, want)
		}
	}
	if !s.Empty() {
		t.Error("stack should be empty after draining")
	}
}

func TestQueueFIFO(t *testing.T) {
	var q Queue[string]

	if _, err := q.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Pop on empty = %v, want ErrEmpty", err)
	}
	if _, err := q.Front(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Front on empty = %v, want ErrEmpty", err)
	}

	q.Push("a")
	q.Push("b")
	q.Push("c")

	if front, err := q.Front(); err != nil || front != "a" {
		t.Errorf("Front = %q, %v, want a, nil", front, err)
	}
	for _, want := range []string{"a", "b", "c"} {
		got, err := q.Pop()
		if err != nil {
			t.Fatalf("Pop: %v", err)
		}
		if got != want {
			t.Errorf("Pop = %q, want %q", got, want)
		}
	}
	if !q.Empty() {
		t.Error("queue should be empty after draining")
	}
}

func TestQueueGrowPreservesOrder(t *testing.T) {
	var q Queue[int]

	// Interleave pushes and pops so the ring wraps before it grows.
	for i := 0; i < 5; i++ {
		q.Push(i)
	}
	for i := 0; i < 5; i++ {
		if got, _ := q.Pop(); got != i {
			t.Fatalf("Pop = %d, want %d", got, i)
		}
	}
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	if got := q.Len(); got != 100 {
		t.Fatalf("Len = %d, want 100", got)
	}
	for i := 0; i < 100; i++ {
		got, err := q.Pop()
		if err != nil {
			t.Fatalf("Pop %d: %v", i, err)
		}
		if got != i {
			t.Errorf("Pop = %d, want %d", got, i)
		}
	}
}

func TestBoundedCapacityTwo(t *testing.T) {
	b := NewBounded[int](2)

	if err := b.Enqueue(1); err != nil {
		t.Fatalf("Enqueue(1): %v", err)
	}
	if err := b.Enqueue(2); err != nil {
		t.Fatalf("Enqueue(2): %v", err)
	}

	// Third enqueue is rejected and the buffer is untouched.
	if err := b.Enqueue(3); !errors.Is(err, ErrFull) {
		t.Errorf("Enqueue(3) = %v, want ErrFull", err)
	}
	if got := b.Len(); got != 2 {
		t.Errorf("Len after rejected enqueue = %d, want 2", got)
	}

	if got, err := b.Dequeue(); err != nil || got != 1 {
		t.Errorf("Dequeue = %d, %v, want 1, nil", got, err)
	}
	if got := b.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
	if got, err := b.Dequeue(); err != nil || got != 2 {
		t.Errorf("Dequeue = %d, %v, want 2, nil", got, err)
	}
	if got := b.Len(); got != 0 {
		t.Errorf("Len = %d, want 0", got)
	}
	if b.head != -1 || b.tail != -1 {
		t.Errorf("indices = (%d, %d), want reset to (-1, -1)", b.head, b.tail)
	}
	if _, err := b.Dequeue(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Dequeue on empty = %v, want ErrEmpty", err)
	}
}

func TestBoundedWrapAround(t *testing.T) {
	b := NewBounded[int](3)

	// Fill, drain two, refill: forces the indices to wrap via modulo.
	for i := 1; i <= 3; i++ {
		if err := b.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	b.Dequeue()
	b.Dequeue()
	b.Enqueue(4)
	b.Enqueue(5)

	for _, want := range []int{3, 4, 5} {
		got, err := b.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if got != want {
			t.Errorf("Dequeue = %d, want %d", got, want)
		}
	}
}

func TestBoundedPanicsOnBadCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBounded(0) should panic")
		}
	}()
	NewBounded[int](0)
}

func TestHeapOrdering(t *testing.T) {
	tests := []struct {
		name string
		push []int
		want []int
	}{
		{name: "Sorted", push: []int{1, 2, 3, 4}, want: []int{1, 2, 3, 4}},
		{name: "Reversed", push: []int{9, 7, 5, 3, 1}, want: []int{1, 3, 5, 7, 9}},
		{name: "Duplicates", push: []int{5, 1, 5, 1, 3}, want: []int{1, 1, 3, 5, 5}},
		{name: "Single", push: []int{42}, want: []int{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHeap(func(a, b int) bool { return a < b })
			for _, v := range tt.push {
				h.Push(v)
			}

			var got []int
			for !h.Empty() {
				v, err := h.Pop()
				if err != nil {
					t.Fatalf("Pop: %v", err)
				}
				got = append(got, v)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("popped %d elements, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pop order[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestHeapEmptyAccess(t *testing.T) {
	h := NewHeap(func(a, b int) bool { return a < b })

	if _, err := h.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Pop on empty = %v, want ErrEmpty", err)
	}
	if _, err := h.Peek(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Peek on empty = %v, want ErrEmpty", err)
	}

	h.Push(7)
	if got, err := h.Peek(); err != nil || got != 7 {
		t.Errorf("Peek = %d, %v, want 7, nil", got, err)
	}
	if got := h.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}

func TestHeapItemsIsACopy(t *testing.T) {
	h := NewHeap(func(a, b int) bool { return a < b })
	h.Push(2)
	h.Push(1)

	items := h.Items()
	items[0] = 99

	if got, _ := h.Peek(); got != 1 {
		t.Errorf("Peek after mutating Items copy = %d, want 1", got)
	}
}
