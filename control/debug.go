// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.

package control

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook, replacing any previous one.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// RingState is a point-in-time view of ring position counters.
type RingState struct {
	Len        int
	Cap        int
	Head       uint64
	Tail       uint64
	Contiguous int
}

// RingProbe returns a probe reporting r's counters. The probe reads r
// unsynchronized; callers sharing r across goroutines must wrap the
// probe in their own lock.
func RingProbe(r api.Inspector) func() any {
	return func() any {
		return RingState{
			Len:        r.Len(),
			Cap:        r.Cap(),
			Head:       r.Head(),
			Tail:       r.Tail(),
			Contiguous: r.ContiguousLen(),
		}
	}
}
