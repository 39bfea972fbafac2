// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, contiguous-storage circular buffers for I/O staging.
//
// A Buffer keeps a monotonically increasing logical tail and a size; the head
// is derived as tail-size and every logical position p lives in physical slot
// p % Cap(). Pushing into a full buffer overwrites the oldest element, popping
// an empty buffer is a no-op. Storage is allocated once (or supplied by the
// caller through NewOn) and never grows.
//
// Besides element access the buffer exposes its storage for bulk writers:
// BeginExternalWrite/CommitExternalWrite and UpdateHead let an outside agent
// such as a DMA engine or a kernel fill slots directly and then publish the
// new data. Contiguous, Segments and MEnd hand out physically contiguous runs
// for single-descriptor copies.
//
// Buffer is not synchronized. Wrap it in Locked, or guard it externally, when
// producer and consumer run on different goroutines.
package ring
