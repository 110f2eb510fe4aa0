// varint.go: Epee's 2-bit-tagged variable-length unsigned integer
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import "encoding/binary"

// Width boundaries for the smallest-fit varint encoding. Not LEB128, not
// SQLite varint: the low two bits of the first byte select one of four
// fixed widths, and the remaining bits (shifted right by 2 on decode)
// hold the value.
const (
	maxFitsOneByte   = 1<<6 - 1  // 63
	maxFitsTwoBytes  = 1<<14 - 1 // 16383
	maxFitsFourBytes = 1<<30 - 1
	maxVarint        = 1<<62 - 1
)

// WriteVarint encodes n using the smallest of the four widths that
// fits. Callers must ensure n <= maxVarint; this library never
// produces values outside that range.
func WriteVarint(w Writer, n uint64) error {
	switch {
	case n <= maxFitsOneByte:
		return WriteAll(w, []byte{byte(n << 2)})
	case n <= maxFitsTwoBytes:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(n<<2)|1)
		return WriteAll(w, buf[:])
	case n <= maxFitsFourBytes:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(n<<2)|2)
		return WriteAll(w, buf[:])
	default:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], (n<<2)|3)
		return WriteAll(w, buf[:])
	}
}

// ReadVarint decodes a varint from r. The first byte's low two bits
// select the width {1,2,4,8}. Non-minimal encodings are accepted on
// read even though WriteVarint never emits them.
func ReadVarint(r Reader) (uint64, error) {
	var first [1]byte
	if err := ReadFull(r, first[:]); err != nil {
		return 0, err
	}
	width := 1 << (first[0] & 0x3)
	if width == 1 {
		return uint64(first[0]) >> 2, nil
	}

	rest := make([]byte, width)
	rest[0] = first[0]
	if err := ReadFull(r, rest[1:]); err != nil {
		return 0, err
	}

	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(rest)) >> 2, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(rest)) >> 2, nil
	default:
		return binary.LittleEndian.Uint64(rest) >> 2, nil
	}
}
