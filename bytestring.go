// bytestring.go: String / byte-string value codec
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

// MaxStringLen is the maximum permitted length of a string or
// byte-string value.
const MaxStringLen = 2_000_000_000

// WriteBytes writes v as a byte-string value: varint length, then the
// raw bytes. Used directly for []byte fields and, via the u8-sequence
// promotion rule, for []uint8 fields ([]uint8 never gets a seq|u8
// marker, see IntoSequence).
func WriteBytes(w Writer, v []byte) error {
	if len(v) > MaxStringLen {
		return newFormatError(ErrCodeStringTooLong, "byte-string exceeded max length")
	}
	if err := WriteVarint(w, uint64(len(v))); err != nil {
		return err
	}
	return WriteAll(w, v)
}

// ReadBytes reads a byte-string value given its already-decoded marker.
// A seq|u8 marker is accepted interchangeably with the string marker —
// the two wire shapes are byte-identical (varint count, then raw bytes)
// and foreign encoders may emit either, though this library only ever
// writes marker 10.
func ReadBytes(r Reader, m Marker) ([]byte, error) {
	if !(m.Inner == MarkerString && !m.IsSeq) && !(m.Inner == MarkerU8 && m.IsSeq) {
		return nil, newFormatError(ErrCodeMarkerMismatch, "Marker does not match expected Marker")
	}
	n, err := ReadVarint(r)
	if err != nil {
		return nil, err
	}
	if n > MaxStringLen {
		return nil, newFormatError(ErrCodeStringTooLong, "byte-string exceeded max length")
	}
	size, err := toIntLen(n)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if err := ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteString writes a text string using the same byte-string wire
// shape; Epee does not distinguish text from arbitrary bytes on the
// wire.
func WriteString(w Writer, v string) error {
	return WriteBytes(w, []byte(v))
}

// ReadString reads a text string.
func ReadString(r Reader, m Marker) (string, error) {
	b, err := ReadBytes(r, m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
