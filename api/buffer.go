// Package api
// Author: momentics
//
// Backing memory regions for rings fed by external writers.
//
// Regions may be hugepages, mmap, or plain heap memory. Ring storage built on a
// region must not outlive it.

package api

// Region describes a fixed, page-aligned memory block owned by its allocator.
type Region interface {
	// Bytes returns the mapped memory, or nil after Release.
	Bytes() []byte

	// Len returns the usable size in bytes.
	Len() int

	// HugePages reports whether the region is backed by huge pages.
	HugePages() bool

	// Release unmaps the region. Subsequent calls are no-ops.
	// After Release, any ring built on Bytes() must not be used.
	Release() error
}
