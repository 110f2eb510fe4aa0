// io_test.go: Byte-stream adapters and encode-buffer recycling
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import (
	"bytes"
	"testing"
)

func TestSliceReaderShortRead(t *testing.T) {
	r := NewSliceReader([]byte{1, 2})
	buf := make([]byte, 4)
	err := ReadFull(r, buf)
	if err == nil {
		t.Fatal("expected reader-short error")
	}
	if !IsCode(err, ErrCodeReaderShort) {
		t.Errorf("expected ErrCodeReaderShort, got %v", err)
	}
}

func TestSliceReaderAdvances(t *testing.T) {
	r := NewSliceReader([]byte{1, 2, 3, 4})
	var a, b [2]byte
	if err := ReadFull(r, a[:]); err != nil {
		t.Fatal(err)
	}
	if err := ReadFull(r, b[:]); err != nil {
		t.Fatal(err)
	}
	if a != [2]byte{1, 2} || b != [2]byte{3, 4} {
		t.Errorf("reads = % x, % x", a, b)
	}
}

func TestBufferWriterAccumulates(t *testing.T) {
	w := NewBufferWriter()
	defer w.Release()
	if err := WriteAll(w, []byte{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(w, []byte{3}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(w.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("Bytes = % x, want 01 02 03", w.Bytes())
	}
}

// A recycled buffer must come back empty: leftover bytes from a prior
// encode would corrupt the next document's header.
func TestBufferWriterReuseStartsEmpty(t *testing.T) {
	w := NewBufferWriter()
	if err := WriteAll(w, []byte("stale")); err != nil {
		t.Fatal(err)
	}
	w.Release()

	w2 := NewBufferWriter()
	defer w2.Release()
	if got := len(w2.Bytes()); got != 0 {
		t.Errorf("reused buffer starts with %d bytes, want 0", got)
	}
}

func TestBufferWriterReleaseIdempotent(t *testing.T) {
	w := NewBufferWriter()
	w.Release()
	w.Release() // second call is a no-op, not a double-Put
}

// A buffer grown past the pooled-capacity cap is dropped on Release; the
// next writer starts from a fresh small allocation instead of inheriting
// the oversized one.
func TestBufferWriterOversizedNotPooled(t *testing.T) {
	w := NewBufferWriter()
	if err := WriteAll(w, make([]byte, maxPooledBufferCap+1)); err != nil {
		t.Fatal(err)
	}
	w.Release()

	w2 := NewBufferWriter()
	defer w2.Release()
	if c := w2.buf.Cap(); c > maxPooledBufferCap {
		t.Errorf("reused buffer capacity %d exceeds pool cap %d", c, maxPooledBufferCap)
	}
}
