// varint_test.go: Varint codec tests
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import "testing"

func TestVarintRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		val     uint64
		wantLen int
	}{
		{"zero", 0, 1},
		{"one_byte_max", 63, 1},
		{"two_byte_min", 64, 2},
		{"two_byte_max", 16383, 2},
		{"four_byte_min", 16384, 4},
		{"four_byte_max", 1<<30 - 1, 4},
		{"eight_byte_min", 1 << 30, 8},
		{"eight_byte_large", 1<<62 - 1, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewBufferWriter()
			defer w.Release()

			if err := WriteVarint(w, c.val); err != nil {
				t.Fatalf("WriteVarint: %v", err)
			}
			if got := len(w.Bytes()); got != c.wantLen {
				t.Errorf("encoded length = %d, want %d", got, c.wantLen)
			}

			r := NewSliceReader(w.Bytes())
			got, err := ReadVarint(r)
			if err != nil {
				t.Fatalf("ReadVarint: %v", err)
			}
			if got != c.val {
				t.Errorf("round-trip = %d, want %d", got, c.val)
			}
		})
	}
}

func TestVarintExactBytes(t *testing.T) {
	// 63 << 2 = 252
	w := NewBufferWriter()
	defer w.Release()
	if err := WriteVarint(w, 63); err != nil {
		t.Fatal(err)
	}
	if got, want := w.Bytes()[0], byte(252); got != want {
		t.Errorf("byte = %d, want %d", got, want)
	}
}

func TestReadVarintShortRead(t *testing.T) {
	// A 2-byte-width marker with only one byte available.
	r := NewSliceReader([]byte{0x01})
	if _, err := ReadVarint(r); err == nil {
		t.Fatal("expected error on short varint read")
	}
}
