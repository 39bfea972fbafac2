// File: ring/bytes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// io adapters over a byte ring.

package ring

import "io"

var (
	_ io.ReadWriter = (*Bytes)(nil)
	_ io.ByteReader = (*Bytes)(nil)
	_ io.ByteWriter = (*Bytes)(nil)
	_ io.ReaderFrom = (*Bytes)(nil)
	_ io.WriterTo   = (*Bytes)(nil)
)

// Bytes is a byte ring with stream methods. Writes never fail: once full,
// only the last Cap() bytes of unread data are retained.
type Bytes struct {
	*Buffer[byte]
}

// NewBytes allocates a byte ring of the given capacity.
func NewBytes(capacity int) *Bytes {
	return &Bytes{Buffer: New[byte](capacity)}
}

// NewBytesOn builds a byte ring over caller-owned storage, e.g. a pool region.
func NewBytesOn(storage []byte) *Bytes {
	return &Bytes{Buffer: NewOn(storage)}
}

// Write appends p, overwriting the oldest bytes when full.
func (b *Bytes) Write(p []byte) (int, error) {
	n := len(p)
	// Only the trailing Cap() bytes can survive.
	if len(p) > b.Cap() {
		b.advance(uint64(len(p) - b.Cap()))
		p = p[len(p)-b.Cap():]
	}
	for len(p) > 0 {
		c := copy(b.BeginExternalWrite(), p)
		b.CommitExternalWrite(c)
		p = p[c:]
	}
	return n, nil
}

// WriteByte appends c.
func (b *Bytes) WriteByte(c byte) error {
	b.Push(c)
	return nil
}

// Read drains up to len(p) bytes.
func (b *Bytes) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.Empty() {
		return 0, io.EOF
	}
	if len(p) > b.Len() {
		p = p[:b.Len()]
	}
	return b.Drain(p), nil
}

// ReadByte pops the oldest byte.
func (b *Bytes) ReadByte() (byte, error) {
	c, ok := b.PopFront()
	if !ok {
		return 0, io.EOF
	}
	return c, nil
}

// ReadFrom reads r straight into storage until EOF, committing each read
// like an external transfer. Overflow keeps the newest bytes.
func (b *Bytes) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		n, err := r.Read(b.BeginExternalWrite())
		if n < 0 {
			return total, io.ErrNoProgress
		}
		b.CommitExternalWrite(n)
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// WriteTo writes live data oldest-first to w and drops what was accepted.
func (b *Bytes) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for !b.Empty() {
		seg := b.Contiguous()
		n, err := w.Write(seg)
		b.Drop(n)
		total += int64(n)
		if err != nil {
			return total, err
		}
		if n < len(seg) {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

// String returns live data oldest-first without consuming it.
func (b *Bytes) String() string {
	first, second := b.Segments()
	out := make([]byte, 0, len(first)+len(second))
	out = append(out, first...)
	return string(append(out, second...))
}
