// sequence.go: Sequence containers over primitives and objects
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import "fmt"

// numericMarker resolves the static marker for a numeric Go type. Unlike
// the Rust original, Go has no const-generic specialization, so this
// costs one type switch per sequence call instead of being resolved at
// compile time — negligible next to the I/O the sequence itself does.
func numericMarker[T Numeric]() InnerMarker {
	var zero T
	switch any(zero).(type) {
	case int64:
		return MarkerI64
	case int32:
		return MarkerI32
	case int16:
		return MarkerI16
	case int8:
		return MarkerI8
	case uint64:
		return MarkerU64
	case uint32:
		return MarkerU32
	case uint16:
		return MarkerU16
	case uint8:
		return MarkerU8
	case float64:
		return MarkerF64
	default:
		panic(fmt.Sprintf("epee: unsupported numeric sequence element type %T", zero))
	}
}

func writeNumericElement[T Numeric](w Writer, v T) error {
	switch x := any(v).(type) {
	case int64:
		return WriteInt64(w, x)
	case int32:
		return WriteInt32(w, x)
	case int16:
		return WriteInt16(w, x)
	case int8:
		return WriteInt8(w, x)
	case uint64:
		return WriteUint64(w, x)
	case uint32:
		return WriteUint32(w, x)
	case uint16:
		return WriteUint16(w, x)
	case uint8:
		return WriteUint8(w, x)
	case float64:
		return WriteFloat64(w, x)
	default:
		panic(fmt.Sprintf("epee: unsupported numeric sequence element type %T", v))
	}
}

func readNumericElement[T Numeric](r Reader, m Marker) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int64:
		v, err := ReadInt64(r, m)
		return any(v).(T), err
	case int32:
		v, err := ReadInt32(r, m)
		return any(v).(T), err
	case int16:
		v, err := ReadInt16(r, m)
		return any(v).(T), err
	case int8:
		v, err := ReadInt8(r, m)
		return any(v).(T), err
	case uint64:
		v, err := ReadUint64(r, m)
		return any(v).(T), err
	case uint32:
		v, err := ReadUint32(r, m)
		return any(v).(T), err
	case uint16:
		v, err := ReadUint16(r, m)
		return any(v).(T), err
	case uint8:
		v, err := ReadUint8(r, m)
		return any(v).(T), err
	case float64:
		v, err := ReadFloat64(r, m)
		return any(v).(T), err
	default:
		panic(fmt.Sprintf("epee: unsupported numeric sequence element type %T", zero))
	}
}

// WriteNumericSequence writes vals as a sequence value: a marker with
// the sequence bit set, a varint count, then each element with no
// per-element marker. A []uint8 never gets a seq|u8 marker: IntoSequence
// promotes it to the byte-string wire shape, whose varint length prefix
// plays the role of the element count. Callers are responsible for
// should-write suppression (see ShouldWriteSequence) before calling this.
func WriteNumericSequence[T Numeric](w Writer, vals []T) error {
	marker := IntoSequence(numericMarker[T]())
	if err := writeMarker(w, marker); err != nil {
		return err
	}
	if marker.Inner == MarkerString {
		return WriteBytes(w, any(vals).([]byte))
	}
	if err := WriteVarint(w, uint64(len(vals))); err != nil {
		return err
	}
	for _, v := range vals {
		if err := writeNumericElement(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadNumericSequence reads a sequence value given its already-decoded
// outer marker. A zero-length sequence accepts any inner tag (the
// elements do not exist, so no mismatch can occur); a non-empty sequence
// must match the expected element marker exactly. A []uint8 is read from
// the byte-string wire shape, mirroring WriteNumericSequence's
// promotion; it goes through ReadBytes, which accepts only the string and
// u8-sequence markers, so the zero-length wildcard does not apply to it.
func ReadNumericSequence[T Numeric](r Reader, m Marker) ([]T, error) {
	if numericMarker[T]() == MarkerU8 {
		b, err := ReadBytes(r, m)
		if err != nil {
			return nil, err
		}
		return any(b).([]T), nil
	}
	if !m.IsSeq {
		return nil, newFormatError(ErrCodeMarkerMismatch, "Marker does not match expected Marker")
	}
	n, err := ReadVarint(r)
	if err != nil {
		return nil, err
	}
	want := numericMarker[T]()
	if n > 0 && m.Inner != want {
		return nil, newFormatError(ErrCodeMarkerMismatch, "Marker does not match expected Marker")
	}
	count, err := toIntLen(n)
	if err != nil {
		return nil, err
	}
	elemMarker := Marker{Inner: want}
	out := make([]T, count)
	for i := range out {
		v, err := readNumericElement[T](r, elemMarker)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteBoolSequence writes vals as a seq|bool value. Bool is not in the
// Numeric constraint, so it gets its own pair rather than widening the
// generic element machinery for one type.
func WriteBoolSequence(w Writer, vals []bool) error {
	if err := writeMarker(w, Marker{Inner: MarkerBool, IsSeq: true}); err != nil {
		return err
	}
	if err := WriteVarint(w, uint64(len(vals))); err != nil {
		return err
	}
	for _, v := range vals {
		if err := WriteBool(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadBoolSequence reads a seq|bool value given its already-decoded
// outer marker, with the same empty-sequence wildcard rule as
// ReadNumericSequence.
func ReadBoolSequence(r Reader, m Marker) ([]bool, error) {
	if !m.IsSeq {
		return nil, newFormatError(ErrCodeMarkerMismatch, "Marker does not match expected Marker")
	}
	n, err := ReadVarint(r)
	if err != nil {
		return nil, err
	}
	if n > 0 && m.Inner != MarkerBool {
		return nil, newFormatError(ErrCodeMarkerMismatch, "Marker does not match expected Marker")
	}
	count, err := toIntLen(n)
	if err != nil {
		return nil, err
	}
	elem := Marker{Inner: MarkerBool}
	out := make([]bool, count)
	for i := range out {
		v, err := ReadBool(r, elem)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ShouldWriteSequence reports whether a sequence-typed field should be
// emitted at all: false when empty, regardless of element type.
func ShouldWriteSequence[T any](vals []T) bool {
	return len(vals) > 0
}

// WriteObjectSequence writes a sequence of objects (tag 12 elements, no
// per-element marker beyond the outer sequence marker).
func WriteObjectSequence(w Writer, objs []Object) error {
	marker := Marker{Inner: MarkerObject, IsSeq: true}
	if err := writeMarker(w, marker); err != nil {
		return err
	}
	if err := WriteVarint(w, uint64(len(objs))); err != nil {
		return err
	}
	for _, obj := range objs {
		if err := writeObjectBody(w, obj); err != nil {
			return err
		}
	}
	return nil
}

// ReadObjectSequence reads a sequence of objects, constructing one
// builder per element via newBuilder.
func ReadObjectSequence[B Builder[T], T any](r Reader, m Marker, newBuilder func() B) ([]T, error) {
	if !m.IsSeq {
		return nil, newFormatError(ErrCodeMarkerMismatch, "Marker does not match expected Marker")
	}
	n, err := ReadVarint(r)
	if err != nil {
		return nil, err
	}
	if n > 0 && m.Inner != MarkerObject {
		return nil, newFormatError(ErrCodeMarkerMismatch, "Marker does not match expected Marker")
	}
	count, err := toIntLen(n)
	if err != nil {
		return nil, err
	}
	out := make([]T, count)
	for i := range out {
		v, err := readObjectBody(r, newBuilder())
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
