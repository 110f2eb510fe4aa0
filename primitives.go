// primitives.go: Per-primitive-type value codec
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import (
	"encoding/binary"
	"math"
)

// Numeric is the closed set of integer and float primitives the wire
// format assigns a marker to. The value codec is sealed: a fixed
// function set, not an exported interface, so nothing outside this
// package can add a thirteenth primitive marker.
type Numeric interface {
	~int64 | ~int32 | ~int16 | ~int8 | ~uint64 | ~uint32 | ~uint16 | ~uint8 | ~float64
}

// toIntLen converts a wire-decoded count to a native int, failing with
// a Value error when it does not fit — possible on 32-bit targets,
// where a hostile varint length would otherwise panic inside make.
func toIntLen(n uint64) (int, error) {
	if n > uint64(math.MaxInt) {
		return 0, newValueError(ErrCodeIntTooLarge, "Int is too large")
	}
	return int(n), nil
}

// checkMarker fails with ErrCodeMarkerMismatch unless got equals want:
// the marker read from the stream must equal the value type's static
// marker.
func checkMarker(got Marker, want InnerMarker) error {
	if got.IsSeq || got.Inner != want {
		return newFormatError(ErrCodeMarkerMismatch, "Marker does not match expected Marker")
	}
	return nil
}

// --- Signed integers ---

func WriteInt64(w Writer, v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return WriteAll(w, buf[:])
}

func ReadInt64(r Reader, m Marker) (int64, error) {
	if err := checkMarker(m, MarkerI64); err != nil {
		return 0, err
	}
	var buf [8]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func WriteInt32(w Writer, v int32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	return WriteAll(w, buf[:])
}

func ReadInt32(r Reader, m Marker) (int32, error) {
	if err := checkMarker(m, MarkerI32); err != nil {
		return 0, err
	}
	var buf [4]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(buf[:])), nil
}

func WriteInt16(w Writer, v int16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	return WriteAll(w, buf[:])
}

func ReadInt16(r Reader, m Marker) (int16, error) {
	if err := checkMarker(m, MarkerI16); err != nil {
		return 0, err
	}
	var buf [2]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(buf[:])), nil
}

func WriteInt8(w Writer, v int8) error {
	return WriteAll(w, []byte{byte(v)})
}

func ReadInt8(r Reader, m Marker) (int8, error) {
	if err := checkMarker(m, MarkerI8); err != nil {
		return 0, err
	}
	var buf [1]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int8(buf[0]), nil
}

// --- Unsigned integers ---

func WriteUint64(w Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return WriteAll(w, buf[:])
}

func ReadUint64(r Reader, m Marker) (uint64, error) {
	if err := checkMarker(m, MarkerU64); err != nil {
		return 0, err
	}
	var buf [8]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func WriteUint32(w Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return WriteAll(w, buf[:])
}

func ReadUint32(r Reader, m Marker) (uint32, error) {
	if err := checkMarker(m, MarkerU32); err != nil {
		return 0, err
	}
	var buf [4]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func WriteUint16(w Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return WriteAll(w, buf[:])
}

func ReadUint16(r Reader, m Marker) (uint16, error) {
	if err := checkMarker(m, MarkerU16); err != nil {
		return 0, err
	}
	var buf [2]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func WriteUint8(w Writer, v uint8) error {
	return WriteAll(w, []byte{v})
}

func ReadUint8(r Reader, m Marker) (uint8, error) {
	if err := checkMarker(m, MarkerU8); err != nil {
		return 0, err
	}
	var buf [1]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// --- Float ---

func WriteFloat64(w Writer, v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return WriteAll(w, buf[:])
}

func ReadFloat64(r Reader, m Marker) (float64, error) {
	if err := checkMarker(m, MarkerF64); err != nil {
		return 0, err
	}
	var buf [8]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// --- Bool ---

func WriteBool(w Writer, v bool) error {
	if v {
		return WriteAll(w, []byte{1})
	}
	return WriteAll(w, []byte{0})
}

func ReadBool(r Reader, m Marker) (bool, error) {
	if err := checkMarker(m, MarkerBool); err != nil {
		return false, err
	}
	var buf [1]byte
	if err := ReadFull(r, buf[:]); err != nil {
		return false, err
	}
	return buf[0] != 0, nil
}
