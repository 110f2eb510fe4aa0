// header.go: The fixed 9-byte document header
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

// header is the fixed byte sequence present at the start of every
// top-level document. It never appears on nested objects.
var header = [9]byte{0x01, 0x11, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01}

// writeHeader emits the fixed header.
func writeHeader(w Writer) error {
	return WriteAll(w, header[:])
}

// readHeader reads and validates the fixed header.
func readHeader(r Reader) error {
	var buf [9]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return err
	}
	if buf != header {
		return newFormatError(ErrCodeBadHeader, "Invalid epee header")
	}
	return nil
}
