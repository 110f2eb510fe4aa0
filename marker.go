// marker.go: Type markers — the 1-byte tag preceding every value
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

// InnerMarker identifies the wire type of a value, independent of
// whether it appears as a single value or as a sequence element.
type InnerMarker byte

// Marker numeric table. Ordered by wire tag, not by access
// frequency — there is no hot/cold split here the way there is for a
// logging field type, since every tag is decoded by the same range
// check in DecodeMarkerByte.
const (
	MarkerI64    InnerMarker = 1
	MarkerI32    InnerMarker = 2
	MarkerI16    InnerMarker = 3
	MarkerI8     InnerMarker = 4
	MarkerU64    InnerMarker = 5
	MarkerU32    InnerMarker = 6
	MarkerU16    InnerMarker = 7
	MarkerU8     InnerMarker = 8
	MarkerF64    InnerMarker = 9
	MarkerString InnerMarker = 10
	MarkerBool   InnerMarker = 11
	MarkerObject InnerMarker = 12
)

// seqBit is the high bit of the marker byte that flags a sequence.
const seqBit = 0x80

// Marker is the decoded form of a marker byte: an inner type tag plus
// whether the sequence bit was set.
type Marker struct {
	Inner InnerMarker
	IsSeq bool
}

// Byte encodes m as the wire's 1-byte marker.
func (m Marker) Byte() byte {
	b := byte(m.Inner)
	if m.IsSeq {
		b |= seqBit
	}
	return b
}

// DecodeMarkerByte decodes a raw marker byte. An inner tag outside 1..12
// fails with ErrCodeUnknownMarker; the sequence bit itself is never
// invalid (it composes with any valid inner tag per the wire contract,
// the seq-of-seq restriction is enforced by IntoSequence, not by decode).
func DecodeMarkerByte(b byte) (Marker, error) {
	inner := InnerMarker(b &^ seqBit)
	if inner < MarkerI64 || inner > MarkerObject {
		return Marker{}, newFormatError(ErrCodeUnknownMarker, "Unknown value Marker")
	}
	return Marker{Inner: inner, IsSeq: b&seqBit != 0}, nil
}

// IntoSequence promotes an inner marker to its sequence form. It takes
// an InnerMarker rather than a Marker, so a sequence-of-sequence marker
// cannot be constructed at all — the restriction is enforced by the type
// instead of a runtime check.
//
// IntoSequence(MarkerU8) returns the string marker instead of a u8
// sequence marker, implementing the byte-string/u8-vector equivalence:
// a []byte is always written as marker 10, never as seq|u8.
func IntoSequence(inner InnerMarker) Marker {
	if inner == MarkerU8 {
		return Marker{Inner: MarkerString, IsSeq: false}
	}
	return Marker{Inner: inner, IsSeq: true}
}

// writeMarker writes a single marker byte.
func writeMarker(w Writer, m Marker) error {
	return WriteAll(w, []byte{m.Byte()})
}

// ReadMarker reads and decodes a single marker byte. Generated builders
// call this before dispatching to the typed Read function for a field.
func ReadMarker(r Reader) (Marker, error) {
	return readMarker(r)
}

// readMarker reads and decodes a single marker byte.
func readMarker(r Reader) (Marker, error) {
	var b [1]byte
	if err := ReadFull(r, b[:]); err != nil {
		return Marker{}, err
	}
	return DecodeMarkerByte(b[0])
}

// fixedWidth returns the wire width in bytes of one value of the given
// inner marker, for the fixed-width primitive tags only (string and
// object are length-prefixed, not fixed-width, and are not valid inputs
// here — see primitives.go/bytestring.go/object.go for those).
func fixedWidth(inner InnerMarker) (int, bool) {
	switch inner {
	case MarkerI64, MarkerU64, MarkerF64:
		return 8, true
	case MarkerI32, MarkerU32:
		return 4, true
	case MarkerI16, MarkerU16:
		return 2, true
	case MarkerI8, MarkerU8, MarkerBool:
		return 1, true
	default:
		return 0, false
	}
}
