// Package platform assigns waiting trains to a fixed number of platform
// slots at a station, in strict arrival order.
//
// The allocator is a thin wrapper over a bounded circular buffer: when
// every slot is taken, a new arrival is reported as a capacity overflow
// and dropped rather than queued elsewhere. The caller decides whether
// to retry once a slot frees up. There is no priority or fairness beyond
// arrival order.
package platform

import (
	"errors"

	"github.com/railnav/railnav/pkg/container"
)

var (
	// ErrCapacityExceeded is returned by [Allocator.Assign] when every
	// platform slot is occupied. The train is not queued; retry later.
	ErrCapacityExceeded = errors.New("all platform slots occupied")

	// ErrNoTrains is returned by [Allocator.Release] and
	// [Allocator.Next] when no train is waiting.
	ErrNoTrains = errors.New("no trains waiting")
)

// Allocator manages the platform slots of a single station.
type Allocator struct {
	slots *container.Bounded[int]
}

// New creates an allocator with the given number of platform slots.
// It panics if slots is not positive.
func New(slots int) *Allocator {
	return &Allocator{slots: container.NewBounded[int](slots)}
}

// Assign places a train in the next free slot.
// Returns ErrCapacityExceeded when the station is full.
func (a *Allocator) Assign(trainID int) error {
	if err := a.slots.Enqueue(trainID); err != nil {
		return ErrCapacityExceeded
	}
	return nil
}

// Release frees the longest-occupied slot and returns the departing
// train's id. Returns ErrNoTrains when every slot is empty.
func (a *Allocator) Release() (int, error) {
	id, err := a.slots.Dequeue()
	if err != nil {
		return 0, ErrNoTrains
	}
	return id, nil
}

// Next returns the train that will depart first without releasing it.
// Returns ErrNoTrains when every slot is empty.
func (a *Allocator) Next() (int, error) {
	id, err := a.slots.Front()
	if err != nil {
		return 0, ErrNoTrains
	}
	return id, nil
}

// Len returns the number of occupied slots.
func (a *Allocator) Len() int { return a.slots.Len() }

// Cap returns the total number of slots.
func (a *Allocator) Cap() int { return a.slots.Cap() }
