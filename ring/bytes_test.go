// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bytes_test.go - io adapters over the byte ring.
package ring_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/momentics/hioload-ring/ring"
)

func TestBytes_WriteRead(t *testing.T) {
	b := ring.NewBytes(10)
	n, err := b.Write([]byte("abcdefgh"))
	if err != nil || n != 8 {
		t.Fatalf("Expected 8 bytes written, got %d (%v)", n, err)
	}
	b.Write([]byte("ijklmnop"))
	if b.String() != "ghijklmnop" {
		t.Fatalf("Expected last 10 bytes, got %q", b.String())
	}
	p := make([]byte, 4)
	if n, err := b.Read(p); err != nil || string(p[:n]) != "ghij" {
		t.Fatalf("Expected ghij, got %q (%v)", p[:n], err)
	}
	rest := make([]byte, 32)
	n, err = b.Read(rest)
	if err != nil || string(rest[:n]) != "klmnop" {
		t.Fatalf("Expected short read klmnop, got %q (%v)", rest[:n], err)
	}
	if _, err := b.Read(rest); err != io.EOF {
		t.Errorf("Expected io.EOF on empty ring, got %v", err)
	}
	if n, err := b.Read(nil); n != 0 || err != nil {
		t.Errorf("Expected zero-length read to succeed, got %d %v", n, err)
	}
}

func TestBytes_WriteLargerThanCap(t *testing.T) {
	b := ring.NewBytes(4)
	b.Write([]byte("xy"))
	n, _ := b.Write([]byte("0123456789"))
	if n != 10 {
		t.Errorf("Expected full length reported, got %d", n)
	}
	if b.String() != "6789" {
		t.Errorf("Expected 6789, got %q", b.String())
	}
	if b.Tail() != 12 {
		t.Errorf("Expected tail to count every byte, got %d", b.Tail())
	}
}

func TestBytes_ByteOps(t *testing.T) {
	b := ring.NewBytes(2)
	for _, c := range []byte("abc") {
		if err := b.WriteByte(c); err != nil {
			t.Fatal(err)
		}
	}
	for _, want := range []byte("bc") {
		c, err := b.ReadByte()
		if err != nil || c != want {
			t.Fatalf("Expected %c, got %c (%v)", want, c, err)
		}
	}
	if _, err := b.ReadByte(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestBytes_ReadFromWriteTo(t *testing.T) {
	src := strings.Repeat("0123456789", 3)
	b := ring.NewBytes(64)
	b.Write([]byte("pre:"))
	b.Read(make([]byte, 4)) // move the tail off physical 0

	n, err := b.ReadFrom(iotest.OneByteReader(strings.NewReader(src)))
	if err != nil || n != int64(len(src)) {
		t.Fatalf("Expected %d read, got %d (%v)", len(src), n, err)
	}
	var out bytes.Buffer
	m, err := b.WriteTo(&out)
	if err != nil || m != int64(len(src)) || out.String() != src {
		t.Fatalf("Expected round trip, got %q (%d, %v)", out.String(), m, err)
	}
	if !b.Empty() {
		t.Errorf("Expected WriteTo to drain, len %d", b.Len())
	}
}

func TestBytes_ReadFromOverflowKeepsNewest(t *testing.T) {
	b := ring.NewBytes(8)
	src := strings.Repeat("abcdefghijklmnopqrstuvwxyz", 2)
	if _, err := b.ReadFrom(strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	if b.String() != src[len(src)-8:] {
		t.Errorf("Expected newest 8 bytes, got %q", b.String())
	}
}

func TestBytes_ReadFromError(t *testing.T) {
	boom := errors.New("boom")
	b := ring.NewBytes(8)
	r := io.MultiReader(strings.NewReader("ab"), iotest.ErrReader(boom))
	n, err := b.ReadFrom(r)
	if !errors.Is(err, boom) || n != 2 || b.String() != "ab" {
		t.Errorf("Expected 2 bytes then boom, got %d %v %q", n, err, b.String())
	}
}

type shortWriter struct{ max int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.max {
		return w.max, nil
	}
	return len(p), nil
}

func TestBytes_WriteToShort(t *testing.T) {
	b := ring.NewBytes(8)
	b.Write([]byte("abcdef"))
	n, err := b.WriteTo(&shortWriter{max: 2})
	if err != io.ErrShortWrite || n != 2 {
		t.Fatalf("Expected short write after 2 bytes, got %d %v", n, err)
	}
	if b.String() != "cdef" {
		t.Errorf("Expected accepted bytes dropped, got %q", b.String())
	}
}

func TestBytes_OnCallerStorage(t *testing.T) {
	storage := make([]byte, 4)
	b := ring.NewBytesOn(storage)
	b.Write([]byte("wxyz"))
	if string(storage) != "wxyz" {
		t.Errorf("Expected bytes in caller storage, got %q", storage)
	}
}
