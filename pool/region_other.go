//go:build !linux && !windows
// +build !linux,!windows

// File: pool/region_other.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed regions for unsupported platforms.

package pool

func platformAlloc(size int, cfg regionConfig) (*Region, error) {
	return heapRegion(size), nil
}
