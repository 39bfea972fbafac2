// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory layer for hioload-ring.
// Allocates page-aligned regions (mmap/hugepages on Linux, VirtualAlloc on
// Windows) that rings use as storage when a DMA engine, kernel ring or other
// external writer fills them directly.
// See region.go and the platform files for implementation details.
package pool
