// skip.go: Unknown-field skipping with a bounded recursion depth
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

// maxSkipDepth bounds recursion into skipped (unknown) nested objects
// only. Recursion through declared, typed object fields is unbounded; a
// caller who wants to bound total nesting must wrap the decode call
// itself.
const maxSkipDepth = 20

// skipValue consumes one field value of unknown type without
// materializing it. depth counts how many skipped-object levels have
// already been entered above this call.
func skipValue(r Reader, depth int) error {
	m, err := readMarker(r)
	if err != nil {
		return err
	}
	if m.IsSeq {
		n, err := ReadVarint(r)
		if err != nil {
			return err
		}
		elem := Marker{Inner: m.Inner}
		for i := uint64(0); i < n; i++ {
			if err := skipOne(r, elem, depth); err != nil {
				return err
			}
		}
		return nil
	}
	return skipOne(r, m, depth)
}

// skipOne consumes a single non-sequence value of the given marker.
func skipOne(r Reader, m Marker, depth int) error {
	if width, ok := fixedWidth(m.Inner); ok {
		buf := make([]byte, width)
		return ReadFull(r, buf)
	}
	switch m.Inner {
	case MarkerString:
		n, err := ReadVarint(r)
		if err != nil {
			return err
		}
		if n > MaxStringLen {
			return newFormatError(ErrCodeStringTooLong, "byte-string exceeded max length")
		}
		size, err := toIntLen(n)
		if err != nil {
			return err
		}
		buf := make([]byte, size)
		return ReadFull(r, buf)
	case MarkerObject:
		if depth+1 > maxSkipDepth {
			return newFormatError(ErrCodeSkipDepth, "Depth of skipped objects exceeded maximum")
		}
		return skipObjectBody(r, depth+1)
	default:
		return newFormatError(ErrCodeUnknownMarker, "Unknown value Marker")
	}
}

// skipObjectBody consumes a whole object's fields, recursively skipping
// each one. It never materializes a builder — there is no declared type
// to build for an unknown field.
func skipObjectBody(r Reader, depth int) error {
	n, err := ReadVarint(r)
	if err != nil {
		return err
	}
	for i := uint64(0); i < n; i++ {
		if _, err := readFieldName(r); err != nil {
			return err
		}
		if err := skipValue(r, depth); err != nil {
			return err
		}
	}
	return nil
}
