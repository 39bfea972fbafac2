// File: ring/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Random-access cursors over logical positions.
//
// An iterator is a non-owning (buffer, position) handle. Positions count from
// Begin()==0 and are resolved against the head at dereference time, so Pop
// and Push shift what an existing iterator points at and Clear invalidates
// it. Iterators from different buffers must not be compared.

package ring

import "iter"

// Iterator is a mutable cursor.
type Iterator[T any] struct {
	buf *Buffer[T]
	pos int
}

// Begin returns a cursor at the oldest element.
func (b *Buffer[T]) Begin() Iterator[T] { return Iterator[T]{buf: b} }

// End returns a cursor one past the newest element.
func (b *Buffer[T]) End() Iterator[T] { return Iterator[T]{buf: b, pos: b.Len()} }

// MEnd returns the end of the physically contiguous run starting at Begin.
// [Begin, MEnd) never wraps; it equals End unless the live data wraps.
func (b *Buffer[T]) MEnd() Iterator[T] {
	return Iterator[T]{buf: b, pos: b.ContiguousLen()}
}

// Value dereferences the cursor.
func (it Iterator[T]) Value() T { return it.buf.At(it.pos) }

// Ref returns a pointer to the slot under the cursor.
func (it Iterator[T]) Ref() *T { return it.buf.Ref(it.pos) }

// Set stores v under the cursor.
func (it Iterator[T]) Set(v T) { *it.buf.Ref(it.pos) = v }

// Pos returns the logical position relative to Begin.
func (it Iterator[T]) Pos() int { return it.pos }

// Physical returns the storage index the cursor currently maps to.
func (it Iterator[T]) Physical() int {
	return int((it.buf.Head() + uint64(it.pos)) % it.buf.cap())
}

// Valid reports whether the cursor is dereferenceable.
func (it Iterator[T]) Valid() bool { return it.pos >= 0 && it.pos < it.buf.Len() }

func (it Iterator[T]) Next() Iterator[T] { it.pos++; return it }
func (it Iterator[T]) Prev() Iterator[T] { it.pos--; return it }
func (it Iterator[T]) Add(n int) Iterator[T] { it.pos += n; return it }
func (it Iterator[T]) Sub(n int) Iterator[T] { it.pos -= n; return it }
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.pos == o.pos }
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.pos < o.pos }

// Distance returns it - o in logical positions.
func (it Iterator[T]) Distance(o Iterator[T]) int { return it.pos - o.pos }

// Const drops write access.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

// ConstIterator is a read-only cursor.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (b *Buffer[T]) CBegin() ConstIterator[T] { return b.Begin().Const() }
func (b *Buffer[T]) CEnd() ConstIterator[T] { return b.End().Const() }
func (b *Buffer[T]) CMEnd() ConstIterator[T] { return b.MEnd().Const() }

func (c ConstIterator[T]) Value() T { return c.it.Value() }
func (c ConstIterator[T]) Pos() int { return c.it.pos }
func (c ConstIterator[T]) Physical() int { return c.it.Physical() }
func (c ConstIterator[T]) Valid() bool { return c.it.Valid() }
func (c ConstIterator[T]) Next() ConstIterator[T] { return c.it.Next().Const() }
func (c ConstIterator[T]) Prev() ConstIterator[T] { return c.it.Prev().Const() }
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return c.it.Add(n).Const() }
func (c ConstIterator[T]) Sub(n int) ConstIterator[T] { return c.it.Sub(n).Const() }
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.pos == o.it.pos }
func (c ConstIterator[T]) Less(o ConstIterator[T]) bool { return c.it.pos < o.it.pos }
func (c ConstIterator[T]) Distance(o ConstIterator[T]) int { return c.it.pos - o.it.pos }

// ReverseIterator runs a cursor backward; it dereferences the element just
// before its base.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a reverse cursor at the newest element.
func (b *Buffer[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{base: b.End()} }

// REnd returns a reverse cursor one before the oldest element.
func (b *Buffer[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{base: b.Begin()} }

// Base returns the underlying forward cursor.
func (r ReverseIterator[T]) Base() Iterator[T] { return r.base }

func (r ReverseIterator[T]) Value() T { return r.base.Prev().Value() }
func (r ReverseIterator[T]) Ref() *T { return r.base.Prev().Ref() }
func (r ReverseIterator[T]) Valid() bool { return r.base.Prev().Valid() }
func (r ReverseIterator[T]) Next() ReverseIterator[T] { r.base.pos--; return r }
func (r ReverseIterator[T]) Prev() ReverseIterator[T] { r.base.pos++; return r }
func (r ReverseIterator[T]) Add(n int) ReverseIterator[T] { r.base.pos -= n; return r }
func (r ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return r.base.pos == o.base.pos }
func (r ReverseIterator[T]) Distance(o ReverseIterator[T]) int { return o.base.pos - r.base.pos }

// All yields (offset, element) oldest-first.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for it, end := b.Begin(), b.End(); it.Less(end); it = it.Next() {
			if !yield(it.pos, it.Value()) {
				return
			}
		}
	}
}

// Values yields elements oldest-first.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields (offset, element) newest-first.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for r, end := b.RBegin(), b.REnd(); !r.Equal(end); r = r.Next() {
			if !yield(r.base.pos-1, r.Value()) {
				return
			}
		}
	}
}
