// bytestring_test.go: String / byte-string codec tests
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import "testing"

func TestStringRoundTrip(t *testing.T) {
	w := NewBufferWriter()
	defer w.Release()
	if err := WriteString(w, "monero"); err != nil {
		t.Fatal(err)
	}
	r := NewSliceReader(w.Bytes())
	got, err := ReadString(r, Marker{Inner: MarkerString})
	if err != nil {
		t.Fatal(err)
	}
	if got != "monero" {
		t.Errorf("got %q, want %q", got, "monero")
	}
}

func TestReadBytesRejectsOverLongLength(t *testing.T) {
	// A crafted length prefix claiming more than MaxStringLen bytes; the
	// length check must fail before any attempt to read that many bytes.
	w := NewBufferWriter()
	defer w.Release()
	if err := WriteVarint(w, MaxStringLen+1); err != nil {
		t.Fatal(err)
	}
	r := NewSliceReader(w.Bytes())
	_, err := ReadBytes(r, Marker{Inner: MarkerString})
	if err == nil {
		t.Fatal("expected error for over-length byte-string")
	}
	if !IsCode(err, ErrCodeStringTooLong) {
		t.Errorf("expected ErrCodeStringTooLong, got %v", err)
	}
}
