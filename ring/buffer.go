// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core ring state: monotonic tail, saturating size, derived head.

package ring

import (
	"fmt"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]           = (*Buffer[any])(nil)
	_ api.ExternalWriter[any] = (*Buffer[any])(nil)
	_ api.Inspector           = (*Buffer[any])(nil)
)

// Buffer is a fixed-capacity overwrite-on-full ring over one contiguous array.
//
// Unchecked accessors (Front, Back, At and their Ref forms) on an empty buffer
// or with an index >= Len() return whatever stale value sits in the mapped
// slot; guarding them is the caller's job. Peek and Get are the checked
// variants.
type Buffer[T any] struct {
	data []T
	tail uint64 // next logical write position, never wraps
	size uint64
}

// New allocates a ring with room for capacity elements.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring capacity must be positive")
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// NewOn builds a ring over caller-owned storage; len(storage) is the capacity.
// The storage must outlive the ring.
func NewOn[T any](storage []T) *Buffer[T] {
	if len(storage) == 0 {
		panic("ring storage must not be empty")
	}
	return &Buffer[T]{data: storage[:len(storage):len(storage)]}
}

func (b *Buffer[T]) cap() uint64 {
	return uint64(len(b.data))
}

// slot maps a logical position onto storage.
func (b *Buffer[T]) slot(pos uint64) *T {
	return &b.data[pos%b.cap()]
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int { return int(b.size) }

// Free returns the number of pushes possible before the oldest is overwritten.
func (b *Buffer[T]) Free() int { return len(b.data) - int(b.size) }

// Empty reports whether no elements are live.
func (b *Buffer[T]) Empty() bool { return b.size == 0 }

// Full reports whether the next push overwrites.
func (b *Buffer[T]) Full() bool { return b.size == b.cap() }

// Tail returns the logical position of the next write.
func (b *Buffer[T]) Tail() uint64 { return b.tail }

// Head returns the logical position of the oldest live element.
func (b *Buffer[T]) Head() uint64 { return b.tail - b.size }

// Push writes item at the tail. A full ring drops its oldest element.
func (b *Buffer[T]) Push(item T) {
	*b.slot(b.tail) = item
	b.tail++
	if b.size < b.cap() {
		b.size++
	}
}

// Pop discards the oldest element; no-op when empty.
func (b *Buffer[T]) Pop() {
	if b.size > 0 {
		b.size--
	}
}

// PopFront removes and returns the oldest element; ok is false when empty.
func (b *Buffer[T]) PopFront() (item T, ok bool) {
	if b.size == 0 {
		return item, false
	}
	item = *b.slot(b.Head())
	b.size--
	return item, true
}

// Clear forgets every element. Slot contents stay until overwritten.
func (b *Buffer[T]) Clear() {
	b.tail = 0
	b.size = 0
}

// Front returns the oldest element.
func (b *Buffer[T]) Front() T { return *b.slot(b.Head()) }

// Back returns the newest element.
func (b *Buffer[T]) Back() T { return *b.slot(b.tail - 1) }

// At returns the element i positions after the oldest.
func (b *Buffer[T]) At(i int) T { return *b.slot(b.Head() + uint64(i)) }

// FrontRef returns a pointer to the oldest slot.
func (b *Buffer[T]) FrontRef() *T { return b.slot(b.Head()) }

// BackRef returns a pointer to the newest slot.
func (b *Buffer[T]) BackRef() *T { return b.slot(b.tail - 1) }

// Ref returns a pointer to the slot i positions after the oldest.
func (b *Buffer[T]) Ref(i int) *T { return b.slot(b.Head() + uint64(i)) }

// Peek returns the oldest element without removing it.
func (b *Buffer[T]) Peek() (item T, ok bool) {
	if b.size == 0 {
		return item, false
	}
	return b.Front(), true
}

// Get is the bounds-checked form of At.
func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= b.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", api.ErrOutOfRange, i, b.Len())
	}
	return b.At(i), nil
}

// Set is the bounds-checked store to logical offset i.
func (b *Buffer[T]) Set(i int, item T) error {
	if i < 0 || i >= b.Len() {
		return fmt.Errorf("%w: index %d, len %d", api.ErrOutOfRange, i, b.Len())
	}
	*b.Ref(i) = item
	return nil
}

// advance publishes inc elements already sitting at the physical tail.
func (b *Buffer[T]) advance(inc uint64) {
	b.tail += inc
	b.size += inc
	if b.size > b.cap() {
		b.size = b.cap()
	}
}

// UpdateHead publishes data an external writer deposited in storage, starting
// at the physical tail and ending just before physical offset. The offset is
// taken modulo Cap(); reaching the current physical tail again means zero new
// elements, use CommitExternalWrite for a full-capacity transfer. Arrivals
// beyond Cap() overwrite the oldest data.
func (b *Buffer[T]) UpdateHead(physical int) {
	c := int64(b.cap())
	next := uint64(((int64(physical) % c) + c) % c)
	tail := b.tail % b.cap()
	var inc uint64
	if tail > next {
		inc = b.cap() - tail + next
	} else {
		inc = next - tail
	}
	b.advance(inc)
}
