//go:build linux
// +build linux

// File: pool/region_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux regions: anonymous mmap, optional MAP_HUGETLB and mlock.

package pool

import (
	"log"
	"os"

	"github.com/momentics/hioload-ring/api"
	"golang.org/x/sys/unix"
)

func platformAlloc(size int, cfg regionConfig) (*Region, error) {
	var (
		mapped []byte
		huge   bool
		err    error
	)
	if cfg.hugePages {
		mapped, err = unix.Mmap(-1, 0, roundUp(size, hugePageSize),
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE|unix.MAP_HUGETLB)
		if err != nil {
			log.Printf("[pool] hugepage mmap failed: %v, falling back to regular pages", err)
		} else {
			huge = true
		}
	}
	if mapped == nil {
		mapped, err = unix.Mmap(-1, 0, roundUp(size, os.Getpagesize()),
			unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
		if err != nil {
			return nil, api.WrapError(api.ErrCodeInternal, "mmap failed", err).
				WithContext("size", size)
		}
	}
	if cfg.locked {
		if err := unix.Mlock(mapped); err != nil {
			unix.Munmap(mapped)
			return nil, api.WrapError(api.ErrCodeInternal, "mlock failed", err).
				WithContext("size", size)
		}
	}
	return &Region{
		data:    mapped[:size:size],
		mapped:  mapped,
		huge:    huge,
		release: unix.Munmap,
	}, nil
}
