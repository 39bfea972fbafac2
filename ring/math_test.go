// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// math_test.go - Property-based checks of index arithmetic against a FIFO model.
package ring_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/ring"
)

// model keeps the last capacity pushes of an unbounded FIFO.
type model struct {
	q   *queue.Queue
	cap int
}

func newModel(capacity int) *model {
	return &model{q: queue.New(), cap: capacity}
}

func (m *model) push(v int) {
	if m.q.Length() == m.cap {
		m.q.Remove()
	}
	m.q.Add(v)
}

func (m *model) pop() {
	if m.q.Length() > 0 {
		m.q.Remove()
	}
}

func (m *model) contents() []int {
	out := make([]int, m.q.Length())
	for i := range out {
		out[i] = m.q.Get(i).(int)
	}
	return out
}

func collect(b *ring.Buffer[int]) []int {
	out := make([]int, 0, b.Len())
	for v := range b.Values() {
		out = append(out, v)
	}
	return out
}

func TestRingMatchesModel(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		capacity := 1 + rng.Intn(13)
		b := ring.New[int](capacity)
		m := newModel(capacity)
		next := 0

		for step := 0; step < 4000; step++ {
			switch rng.Intn(6) {
			case 0, 1:
				b.Push(next)
				m.push(next)
				next++
			case 2:
				b.Pop()
				m.pop()
			case 3:
				n := rng.Intn(capacity + 2)
				b.Drop(n)
				for i := 0; i < n; i++ {
					m.pop()
				}
			case 4:
				// Simulated transfer of k elements written into storage.
				k := rng.Intn(capacity)
				w := b.BeginExternalWrite()
				start := int(b.Tail() % uint64(capacity))
				for i := 0; i < k; i++ {
					if i < len(w) {
						w[i] = next
					} else {
						b.Storage()[i-len(w)] = next
					}
					m.push(next)
					next++
				}
				b.UpdateHead(start + k)
			case 5:
				dst := make([]int, rng.Intn(capacity+1))
				want := m.contents()
				n := b.Drain(dst)
				if len(dst) > len(want) {
					require.Zero(t, n, "oversized drain must be a no-op")
					break
				}
				require.Equal(t, len(dst), n)
				assert.Equal(t, want[:len(dst)], dst)
				for range dst {
					m.pop()
				}
			}

			require.GreaterOrEqual(t, b.Len(), 0)
			require.LessOrEqual(t, b.Len(), capacity)
			require.Equal(t, uint64(b.Len()), b.Tail()-b.Head())
			require.Equal(t, m.contents(), collect(b), "seed %d step %d", seed, step)
		}
	}
}

func TestUpdateHead_DistanceProperty(t *testing.T) {
	t.Parallel()
	const capacity = 9
	for tail := 0; tail < 2*capacity; tail++ {
		for size := 0; size <= capacity; size++ {
			for d := 0; d < capacity; d++ {
				b := ring.New[int](capacity)
				for i := 0; i < tail; i++ {
					b.Push(i)
				}
				b.Drop(b.Len())
				for i := 0; i < size; i++ {
					b.Push(i)
				}
				before := b.Len()
				b.UpdateHead(int(b.Tail()%capacity) + d)
				want := before + d
				if want > capacity {
					want = capacity
				}
				assert.Equal(t, want, b.Len(), "tail %d size %d d %d", tail, size, d)
			}
		}
	}
}

func TestOverflowKeepsLastCapacity(t *testing.T) {
	t.Parallel()
	for capacity := 1; capacity <= 6; capacity++ {
		for k := 1; k <= 3*capacity; k++ {
			b := ring.New[int](capacity)
			for i := 0; i < capacity+k; i++ {
				b.Push(i)
			}
			require.Equal(t, capacity, b.Len())
			want := make([]int, capacity)
			for i := range want {
				want[i] = k + i
			}
			assert.Equal(t, want, collect(b))
			assert.True(t, ring.Equal(b, want))
		}
	}
}
