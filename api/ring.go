// Package api
// Author: momentics@gmail.com
//
// Overwrite-on-full ring contracts shared by the ring, pool and control packages.

package api

// Ring is a fixed-capacity FIFO that overwrites its oldest element when full.
// Implementations are not synchronized.
type Ring[T any] interface {
	// Push appends item; when full the oldest item is discarded.
	Push(item T)
	// Pop discards the oldest item; no-op when empty.
	Pop()
	// Front returns the oldest item. Unspecified when empty.
	Front() T
	// Back returns the newest item. Unspecified when empty.
	Back() T
	// At returns the item at logical offset i from the oldest. Unspecified if i >= Len().
	At(i int) T
	// Clear resets the ring without wiping storage.
	Clear()
	// Len returns current number of items.
	Len() int
	// Cap returns buffer capacity.
	Cap() int
}

// ExternalWriter is the two-phase hand-off for agents (DMA engines, kernel
// rings, readers) that deposit data straight into ring storage.
//
// The caller supplies synchronization between the external write and the
// commit; the commit is the only point where new data becomes visible.
type ExternalWriter[T any] interface {
	// Storage exposes the whole backing array in physical order.
	Storage() []T
	// BeginExternalWrite returns the contiguous run starting at the physical tail.
	BeginExternalWrite() []T
	// CommitExternalWrite publishes n elements written at the physical tail.
	CommitExternalWrite(n int)
	// UpdateHead publishes everything written up to physical offset.
	UpdateHead(physical int)
}

// Inspector exposes raw position counters for diagnostics.
type Inspector interface {
	Len() int
	Cap() int
	Head() uint64
	Tail() uint64
	ContiguousLen() int
}
