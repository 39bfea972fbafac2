// File: ring/contiguous.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Physically contiguous runs and the two-phase external write hand-off.

package ring

// ContiguousLen returns how many live elements, starting at the head, sit in
// storage without crossing the physical end.
func (b *Buffer[T]) ContiguousLen() int {
	room := b.cap() - b.Head()%b.cap()
	if b.size < room {
		return int(b.size)
	}
	return int(room)
}

// Storage exposes the backing array in physical order.
func (b *Buffer[T]) Storage() []T {
	return b.data
}

// Contiguous returns the live run [Begin, MEnd) as a slice aliasing storage.
func (b *Buffer[T]) Contiguous() []T {
	start := b.Head() % b.cap()
	return b.data[start : start+uint64(b.ContiguousLen())]
}

// Segments returns live data oldest-first in at most two runs. second is
// empty unless the data wraps past the physical end.
func (b *Buffer[T]) Segments() (first, second []T) {
	first = b.Contiguous()
	rest := b.Len() - len(first)
	return first, b.data[:rest]
}

// BeginExternalWrite returns the run from the physical tail to the physical
// end of storage. An external writer fills a prefix of it and then calls
// CommitExternalWrite. Slots past Free() still hold live data; committing
// over them overwrites the oldest elements.
//
// The slice is valid until the next mutating call.
func (b *Buffer[T]) BeginExternalWrite() []T {
	return b.data[b.tail%b.cap():]
}

// CommitExternalWrite publishes n elements written at the physical tail.
func (b *Buffer[T]) CommitExternalWrite(n int) {
	if n < 0 {
		panic("ring: negative commit")
	}
	b.advance(uint64(n))
}
