// File: ring/locked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex layer for sharing a ring between a producer and a consumer goroutine.

package ring

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Locked serializes access to a Buffer. All methods are safe for concurrent use.
type Locked[T any] struct {
	_   cpu.CacheLinePad
	mu  sync.Mutex
	buf *Buffer[T]
	_   cpu.CacheLinePad
}

// NewLocked wraps b. b must not be used directly afterwards.
func NewLocked[T any](b *Buffer[T]) *Locked[T] {
	return &Locked[T]{buf: b}
}

// Do runs fn with exclusive access to the ring. fn must not retain slices or
// iterators obtained from the ring past its return.
func (l *Locked[T]) Do(fn func(b *Buffer[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.buf)
}

func (l *Locked[T]) Push(item T) {
	l.mu.Lock()
	l.buf.Push(item)
	l.mu.Unlock()
}

func (l *Locked[T]) PopFront() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.PopFront()
}

func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Len()
}

func (l *Locked[T]) Drain(dst []T) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.Drain(dst)
}

// CommitExternalWrite is the synchronization point for an external writer
// that filled storage outside the lock.
func (l *Locked[T]) CommitExternalWrite(n int) {
	l.mu.Lock()
	l.buf.CommitExternalWrite(n)
	l.mu.Unlock()
}

// UpdateHead publishes external data up to a physical offset.
func (l *Locked[T]) UpdateHead(physical int) {
	l.mu.Lock()
	l.buf.UpdateHead(physical)
	l.mu.Unlock()
}
