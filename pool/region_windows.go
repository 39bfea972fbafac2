//go:build windows
// +build windows

// File: pool/region_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows regions via VirtualAlloc.

package pool

import (
	"log"
	"unsafe"

	"github.com/momentics/hioload-ring/api"
	"golang.org/x/sys/windows"
)

func platformAlloc(size int, cfg regionConfig) (*Region, error) {
	if cfg.hugePages {
		log.Printf("[pool] large pages need SeLockMemoryPrivilege, using regular pages")
	}
	length := roundUp(size, windows.Getpagesize())
	addr, err := windows.VirtualAlloc(0, uintptr(length),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, api.WrapError(api.ErrCodeInternal, "VirtualAlloc failed", err).
			WithContext("size", size)
	}
	mapped := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
	if cfg.locked {
		if err := windows.VirtualLock(addr, uintptr(length)); err != nil {
			windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
			return nil, api.WrapError(api.ErrCodeInternal, "VirtualLock failed", err).
				WithContext("size", size)
		}
	}
	return &Region{
		data:   mapped[:size:size],
		mapped: mapped,
		release: func(m []byte) error {
			return windows.VirtualFree(uintptr(unsafe.Pointer(&m[0])), 0, windows.MEM_RELEASE)
		},
	}, nil
}
