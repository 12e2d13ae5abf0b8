package platform

import (
	"errors"
	"testing"
)

func TestAllocatorArrivalOrder(t *testing.T) {
	a := New(3)

	for _, id := range []int{101, 102, 103} {
		if err := a.Assign(id); err != nil {
			t.Fatalf("Assign(%d): %v", id, err)
		}
	}

	if err := a.Assign(104); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("Assign past capacity = %v, want ErrCapacityExceeded", err)
	}
	if got := a.Len(); got != 3 {
		t.Errorf("Len after rejected assign = %d, want 3", got)
	}

	if next, err := a.Next(); err != nil || next != 101 {
		t.Errorf("Next = %d, %v, want 101, nil", next, err)
	}
	for _, want := range []int{101, 102, 103} {
		got, err := a.Release()
		if err != nil {
			t.Fatalf("Release: %v", err)
		}
		if got != want {
			t.Errorf("Release = %d, want %d", got, want)
		}
	}

	if _, err := a.Release(); !errors.Is(err, ErrNoTrains) {
		t.Errorf("Release on empty = %v, want ErrNoTrains", err)
	}
	if _, err := a.Next(); !errors.Is(err, ErrNoTrains) {
		t.Errorf("Next on empty = %v, want ErrNoTrains", err)
	}

	// Slots freed by releases are reusable.
	if err := a.Assign(105); err != nil {
		t.Errorf("Assign after drain: %v", err)
	}
	if got := a.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
}
