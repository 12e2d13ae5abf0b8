// Package container provides the small set of collection primitives the
// routing engine and its peripherals are built from: a LIFO stack, a FIFO
// queue, a fixed-capacity bounded buffer, and a binary min-heap.
//
// All containers are generic and slice-backed. The stack and queue grow as
// needed; the bounded buffer never grows and instead rejects writes when
// full, which callers such as the platform allocator treat as a deliberate
// backpressure outcome rather than a failure.
//
// Reading from an empty container is a checked error ([ErrEmpty]) rather
// than a silent zero value, so callers cannot mistake "no value" for a
// legitimate zero.
//
// None of the types are safe for concurrent use without external
// synchronization.
package container
