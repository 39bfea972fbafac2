// File: ring/ops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range operators composed from the single-element primitives.

package ring

import "iter"

// PushAll appends src in order. Overflow overwrites the oldest elements, so
// only the last Cap() items of an oversized src survive.
func (b *Buffer[T]) PushAll(src ...T) {
	for _, v := range src {
		b.Push(v)
	}
}

// PushSeq appends every element produced by seq.
func (b *Buffer[T]) PushSeq(seq iter.Seq[T]) {
	for v := range seq {
		b.Push(v)
	}
}

// Drop pops n elements, stopping silently once empty.
func (b *Buffer[T]) Drop(n int) {
	if n <= 0 {
		return
	}
	if uint64(n) >= b.size {
		b.size = 0
		return
	}
	b.size -= uint64(n)
}

// Drain fills dst with the oldest len(dst) elements and pops them. If dst is
// longer than Len() nothing is copied. Returns the number of elements moved.
func (b *Buffer[T]) Drain(dst []T) int {
	if len(dst) > b.Len() {
		return 0
	}
	first, second := b.Segments()
	n := copy(dst, first)
	n += copy(dst[n:], second)
	b.size -= uint64(n)
	return n
}

// Equal reports whether the first len(src) elements of b match src. A src
// longer than b.Len() is never equal.
func Equal[T comparable](b *Buffer[T], src []T) bool {
	return EqualFunc(b, src, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied comparison.
func EqualFunc[T any](b *Buffer[T], src []T, eq func(T, T) bool) bool {
	if len(src) > b.Len() {
		return false
	}
	it := b.Begin()
	for _, v := range src {
		if !eq(it.Value(), v) {
			return false
		}
		it = it.Next()
	}
	return true
}
