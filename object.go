// object.go: Object framing, field dispatch, and the Object/Builder contract
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import (
	"fmt"

	errors "github.com/agilira/go-errors"
)

// maxNameLen is the ceiling the one-byte field-name length prefix
// imposes.
const maxNameLen = 255

// Object is the capability set an application record exposes to the
// engine for encoding. A record's NumberOfFields must already reflect
// default-suppression, empty-sequence suppression, and flatten
// adjustments — the engine does not recompute them.
type Object interface {
	NumberOfFields() uint64
	WriteFields(w Writer) error
}

// Builder is the companion decode-side capability set for a record of
// type T. A Builder starts with all slots unset (or preloaded with
// declared defaults) and is mutated one field at a time.
type Builder[T any] interface {
	// AddField is given a field name already read off the wire. It
	// returns (true, nil) if the name matched one of the record's
	// fields and the value was fully consumed from r; (false, nil) if
	// the name is unknown, in which case the engine skips the value
	// itself. A non-nil error aborts the whole decode.
	AddField(name string, r Reader) (bool, error)

	// Finish materializes the record, or fails if a required
	// (non-defaulted) field was never set.
	Finish() (T, error)
}

// NewBuilder constructs a Builder[T]; generated per-record packages
// supply this as, e.g., NewFooBuilder.
type NewBuilder[B Builder[T], T any] func() B

// ToBytes encodes obj as a complete top-level document: header, field
// count, then fields.
func ToBytes(obj Object) ([]byte, error) {
	w := NewBufferWriter()
	defer w.Release()

	if err := writeHeader(w); err != nil {
		return nil, err
	}
	if err := writeObjectBody(w, obj); err != nil {
		return nil, err
	}

	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())
	return out, nil
}

// FromBytes decodes a complete top-level document produced by ToBytes.
// Trailing bytes after the root object are ignored. newBuilder
// must return a fresh, empty builder each call.
func FromBytes[B Builder[T], T any](data []byte, newBuilder func() B) (T, error) {
	var zero T
	r := NewSliceReader(data)
	if err := readHeader(r); err != nil {
		return zero, err
	}
	return readObjectBody(r, newBuilder())
}

// writeObjectBody writes the varint field count and fields of obj,
// without a header. Used for the root document and for nested/sequence
// object values, which never carry their own header.
func writeObjectBody(w Writer, obj Object) error {
	if err := WriteVarint(w, obj.NumberOfFields()); err != nil {
		return err
	}
	return obj.WriteFields(w)
}

// readObjectBody reads a field count followed by that many fields,
// dispatching each to b.AddField and skipping values the builder does
// not recognize.
func readObjectBody[B Builder[T], T any](r Reader, b B) (T, error) {
	var zero T
	n, err := ReadVarint(r)
	if err != nil {
		return zero, err
	}
	for i := uint64(0); i < n; i++ {
		name, err := readFieldName(r)
		if err != nil {
			return zero, err
		}
		ok, err := b.AddField(name, r)
		if err != nil {
			if e, isEpee := err.(*errors.Error); isEpee {
				return zero, withField(e, name)
			}
			return zero, err
		}
		if !ok {
			if err := skipValue(r, 0); err != nil {
				return zero, err
			}
		}
	}
	return b.Finish()
}

// ReadObject reads a single nested-object value given its already
// decoded marker, used by generated builders for object-typed fields.
func ReadObject[B Builder[T], T any](r Reader, m Marker, newBuilder func() B) (T, error) {
	var zero T
	if err := checkMarker(m, MarkerObject); err != nil {
		return zero, err
	}
	return readObjectBody(r, newBuilder())
}

// WriteObject writes a single nested-object value's body (the caller is
// responsible for the preceding marker byte via WriteField).
func WriteObject(w Writer, obj Object) error {
	return writeObjectBody(w, obj)
}

// writeFieldName writes the 1-byte length prefix and name bytes.
func writeFieldName(w Writer, name string) error {
	if len(name) > maxNameLen {
		return newFormatError(ErrCodeNameTooLong,
			fmt.Sprintf("field name %q exceeds max length %d", name, maxNameLen))
	}
	if err := WriteAll(w, []byte{byte(len(name))}); err != nil {
		return err
	}
	return WriteAll(w, []byte(name))
}

// WriteFieldName writes a field's 1-byte length prefix and name bytes,
// with no marker or value. Generated code uses this directly ahead of a
// sequence writer (WriteNumericSequence, WriteObjectSequence), since
// those already emit their own marker byte and WriteField would double
// it; for a plain scalar field, WriteField is the right call instead.
func WriteFieldName(w Writer, name string) error {
	return writeFieldName(w, name)
}

// readFieldName reads a 1-byte length prefix and that many name bytes.
func readFieldName(r Reader) (string, error) {
	var lenBuf [1]byte
	if err := ReadFull(r, lenBuf[:]); err != nil {
		return "", err
	}
	buf := make([]byte, lenBuf[0])
	if err := ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteField emits a single field's (name, marker, value) triple. It is
// the generated WriteFields method's per-field primitive: callers decide
// should-write suppression (and the matching NumberOfFields adjustment)
// before calling this — WriteField always emits unconditionally once
// called.
func WriteField(w Writer, name string, marker Marker, writeValue func(Writer) error) error {
	if err := writeFieldName(w, name); err != nil {
		return err
	}
	if err := writeMarker(w, marker); err != nil {
		return err
	}
	return writeValue(w)
}
