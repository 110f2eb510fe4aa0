// header_test.go: Header framing tests
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import (
	"bytes"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	w := NewBufferWriter()
	defer w.Release()
	if err := writeHeader(w); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	want := []byte{0x01, 0x11, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("header = % x, want % x", w.Bytes(), want)
	}

	r := NewSliceReader(w.Bytes())
	if err := readHeader(r); err != nil {
		t.Fatalf("readHeader: %v", err)
	}
}

func TestReadHeaderRejectsWrongBytes(t *testing.T) {
	r := NewSliceReader([]byte{0x01, 0x11, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x00})
	err := readHeader(r)
	if err == nil {
		t.Fatal("expected error for malformed header")
	}
	if !IsCode(err, ErrCodeBadHeader) {
		t.Errorf("expected ErrCodeBadHeader, got %v", err)
	}
}

func TestReadHeaderShort(t *testing.T) {
	r := NewSliceReader([]byte{0x01, 0x11})
	if err := readHeader(r); err == nil {
		t.Fatal("expected error for short header")
	}
}
