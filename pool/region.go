// File: pool/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed memory regions backing rings that external writers fill directly.

package pool

import (
	"sync"

	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Region = (*Region)(nil)

const hugePageSize = 2 << 20

// regionConfig collects allocation preferences.
type regionConfig struct {
	hugePages bool
	locked    bool
}

// RegionOption customizes region allocation.
type RegionOption func(*regionConfig)

// WithHugePages requests 2 MiB pages where the platform supports them.
// Allocation falls back to regular pages when none are available.
func WithHugePages() RegionOption {
	return func(c *regionConfig) {
		c.hugePages = true
	}
}

// WithLocked pins the region in RAM so a transfer engine never faults on it.
func WithLocked() RegionOption {
	return func(c *regionConfig) {
		c.locked = true
	}
}

// Region is an allocated block. Bytes() has exactly the requested length;
// the mapping behind it may be larger.
type Region struct {
	mu      sync.Mutex
	data    []byte
	mapped  []byte
	huge    bool
	release func(mapped []byte) error
}

// AllocRegion allocates size bytes using the platform allocator.
func AllocRegion(size int, opts ...RegionOption) (*Region, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "region size must be positive").
			WithContext("size", size)
	}
	var cfg regionConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return platformAlloc(size, cfg)
}

// heapRegion is the portable fallback.
func heapRegion(size int) *Region {
	data := make([]byte, size)
	return &Region{data: data, mapped: data}
}

// Bytes returns the region memory, nil once released.
func (r *Region) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

// Len returns the usable size, 0 once released.
func (r *Region) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}

// HugePages reports whether huge pages back the region.
func (r *Region) HugePages() bool { return r.huge }

// Release frees the mapping. Safe to call more than once.
func (r *Region) Release() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil
	}
	mapped := r.mapped
	r.data, r.mapped = nil, nil
	if r.release == nil {
		return nil
	}
	if err := r.release(mapped); err != nil {
		return api.WrapError(api.ErrCodeInternal, "region release failed", err)
	}
	return nil
}

func roundUp(n, to int) int {
	return ((n + to - 1) / to) * to
}
