// Package schedule maintains a departure board ordered by time.
//
// Services are kept in a binary min-heap keyed on departure time, so the
// next train is always O(log n) away regardless of insertion order.
// Listing the board does not drain it: [Board.Upcoming] works on a copy.
package schedule

import (
	"errors"
	"fmt"

	"github.com/railnav/railnav/pkg/container"
)

// ErrNoServices is returned when the board is empty.
var ErrNoServices = errors.New("no services scheduled")

// Status describes a scheduled service's operational state.
type Status string

const (
	StatusOnTime    Status = "on-time"
	StatusDelayed   Status = "delayed"
	StatusCancelled Status = "cancelled"
)

// Train is a scheduled service.
type Train struct {
	ID        int
	Name      string
	Departure int // minutes from midnight
	Origin    int // station id
	Status    Status
}

// Clock formats the departure as HH:MM.
func (t Train) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Departure/60, t.Departure%60)
}

// Board is a departure board: a priority queue of services ordered by
// departure time. The zero value is not usable; call New.
type Board struct {
	heap *container.Heap[Train]
}

// New creates an empty departure board.
func New() *Board {
	return &Board{
		heap: container.NewHeap(func(a, b Train) bool { return a.Departure < b.Departure }),
	}
}

// Add schedules a service. Status defaults to on-time when unset.
func (b *Board) Add(t Train) {
	if t.Status == "" {
		t.Status = StatusOnTime
	}
	b.heap.Push(t)
}

// Next removes and returns the earliest departure.
// Returns ErrNoServices when the board is empty.
func (b *Board) Next() (Train, error) {
	t, err := b.heap.Pop()
	if err != nil {
		return Train{}, ErrNoServices
	}
	return t, nil
}

// Peek returns the earliest departure without removing it.
// Returns ErrNoServices when the board is empty.
func (b *Board) Peek() (Train, error) {
	t, err := b.heap.Peek()
	if err != nil {
		return Train{}, ErrNoServices
	}
	return t, nil
}

// Upcoming returns every scheduled service in departure order without
// draining the board.
func (b *Board) Upcoming() []Train {
	scratch := container.NewHeap(func(a, b Train) bool { return a.Departure < b.Departure })
	for _, t := range b.heap.Items() {
		scratch.Push(t)
	}
	out := make([]Train, 0, scratch.Len())
	for !scratch.Empty() {
		t, err := scratch.Pop()
		if err != nil {
			break
		}
		out = append(out, t)
	}
	return out
}

// PeakBoost schedules extra services at the given departure times from
// origin, numbered from startID. Used during peak windows to thicken
// frequency without touching existing services.
func (b *Board) PeakBoost(origin, startID int, departures []int) []Train {
	added := make([]Train, 0, len(departures))
	for i, dep := range departures {
		t := Train{
			ID:        startID + i,
			Name:      fmt.Sprintf("Peak Special %d", i+1),
			Departure: dep,
			Origin:    origin,
			Status:    StatusOnTime,
		}
		b.Add(t)
		added = append(added, t)
	}
	return added
}

// Len returns the number of scheduled services.
func (b *Board) Len() int { return b.heap.Len() }
