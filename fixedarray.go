// fixedarray.go: Fixed-size byte array value codec
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import "fmt"

// WriteFixedBytes writes a fixed-size byte array as a byte-string value.
// On the wire a [N]byte is indistinguishable from a []byte of length N;
// the size check happens only on read, where the decoded length must
// equal the declared size.
func WriteFixedBytes(w Writer, v []byte) error {
	return WriteBytes(w, v)
}

// ReadFixedBytes reads a byte-string value and verifies its length
// equals n, failing with ErrCodeArrayLength otherwise. dst must have
// length n; the decoded bytes are copied into it.
func ReadFixedBytes(r Reader, m Marker, dst []byte) error {
	b, err := ReadBytes(r, m)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return newFormatError(ErrCodeArrayLength,
			fmt.Sprintf("expected fixed array of length %d, got %d", len(dst), len(b)))
	}
	copy(dst, b)
	return nil
}
