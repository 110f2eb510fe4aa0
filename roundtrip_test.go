// roundtrip_test.go: End-to-end scenarios S1-S8 from the wire contract
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import (
	"bytes"
	"testing"
)

// S1: minimal record { val: u64 }, val = 0.
func TestScenarioS1MinimalRecord(t *testing.T) {
	want := []byte{
		0x01, 0x11, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01,
		0x04, 0x03, 0x76, 0x61, 0x6C, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	got, err := ToBytes(&valRecord{Val: 0})
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

// S2: optional field absent.
func TestScenarioS2OptionalAbsent(t *testing.T) {
	want := []byte{0x01, 0x11, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x00}
	got, err := ToBytes(&optValRecord{Val: nil})
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}

	decoded, err := FromBytes(got, newOptValRecordBuilder)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if decoded.Val != nil {
		t.Errorf("Val = %v, want nil", decoded.Val)
	}
}

// S3: optional field present.
func TestScenarioS3OptionalPresent(t *testing.T) {
	v := uint8(21)
	want := []byte{
		0x01, 0x11, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01,
		0x04, 0x03, 0x76, 0x61, 0x6C, 0x08, 0x15,
	}
	got, err := ToBytes(&optValRecord{Val: &v})
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

// S4: alt-name equivalence — a native field name and an attribute-renamed
// field produce byte-identical output for equal values.
func TestScenarioS4AltNameEquivalence(t *testing.T) {
	a := &altNativeRecord{Val2: 40, D: 30}
	b := &altRenamedRecord{Val: 40, D: 30}

	aBytes, err := ToBytes(a)
	if err != nil {
		t.Fatal(err)
	}
	bBytes, err := ToBytes(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(aBytes, bBytes) {
		t.Errorf("alt-name bytes differ: % x vs % x", aBytes, bBytes)
	}

	decodedAsB, err := FromBytes(aBytes, newAltRenamedRecordBuilder)
	if err != nil {
		t.Fatal(err)
	}
	if decodedAsB.Val != 40 || decodedAsB.D != 30 {
		t.Errorf("decoded cross-type = %+v", decodedAsB)
	}
}

// S5: flatten equivalence — a flattened child's fields byte-match a
// manually flattened record with the same values in the combined
// declaration order.
func TestScenarioS5FlattenEquivalence(t *testing.T) {
	parent := &parentRecord{
		Child: childRecord{Val: 94, Val2: []byte{4, 5}},
		H:     38.9,
	}
	manual := &manualFlatRecord{Val: 94, Val2: []byte{4, 5}, H: 38.9}

	parentBytes, err := ToBytes(parent)
	if err != nil {
		t.Fatal(err)
	}
	manualBytes, err := ToBytes(manual)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(parentBytes, manualBytes) {
		t.Errorf("flatten bytes differ:\nparent = % x\nmanual = % x", parentBytes, manualBytes)
	}
}

// Bytes produced by ToBytes decode and re-encode to the identical byte
// string: the wire is fully order-deterministic on encode.
func TestByteRoundTripStability(t *testing.T) {
	orig, err := ToBytes(&valRecord{Val: 123456789})
	if err != nil {
		t.Fatal(err)
	}
	dec, err := FromBytes(orig, newValRecordBuilder)
	if err != nil {
		t.Fatal(err)
	}
	re, err := ToBytes(&dec)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(orig, re) {
		t.Errorf("re-encoded bytes differ:\norig = % x\nre   = % x", orig, re)
	}
}

// S6: unknown field skipped, see TestObjectUnknownFieldSkipped in
// object_test.go.

// S7: required field missing, see TestObjectMissingRequiredField.

// S8: skip-depth overflow — 21 nested unknown objects fail.
func TestScenarioS8SkipDepthOverflow(t *testing.T) {
	w := NewBufferWriter()
	defer w.Release()

	if err := writeHeader(w); err != nil {
		t.Fatal(err)
	}
	if err := WriteVarint(w, 1); err != nil { // one field: "x"
		t.Fatal(err)
	}
	if err := writeFieldName(w, "x"); err != nil {
		t.Fatal(err)
	}
	if err := writeMarker(w, Marker{Inner: MarkerObject}); err != nil {
		t.Fatal(err)
	}
	// "x"'s value plus 19 more linked objects plus the empty terminator:
	// 21 nested objects in all.
	if err := writeObjectChain(w, 20); err != nil {
		t.Fatal(err)
	}

	_, err := FromBytes(w.Bytes(), newEmptyRecordBuilder)
	if err == nil {
		t.Fatal("expected skip-depth error")
	}
	if !IsCode(err, ErrCodeSkipDepth) {
		t.Errorf("expected ErrCodeSkipDepth, got %v", err)
	}
}

// writeObjectChain writes `remaining` nested objects, each holding a
// single field "n" whose value is the next object in the chain, and a
// zero-field terminator object at the end: remaining+1 objects in all.
func writeObjectChain(w Writer, remaining int) error {
	if remaining == 0 {
		return WriteVarint(w, 0)
	}
	if err := WriteVarint(w, 1); err != nil {
		return err
	}
	if err := writeFieldName(w, "n"); err != nil {
		return err
	}
	if err := writeMarker(w, Marker{Inner: MarkerObject}); err != nil {
		return err
	}
	return writeObjectChain(w, remaining-1)
}

// TestScenarioS8SkipDepthAtBoundarySucceeds confirms one fewer nesting
// level than the failure case still decodes successfully, proving the
// bound is exercised at exactly the documented value.
func TestScenarioS8SkipDepthAtBoundarySucceeds(t *testing.T) {
	w := NewBufferWriter()
	defer w.Release()

	if err := writeHeader(w); err != nil {
		t.Fatal(err)
	}
	if err := WriteVarint(w, 1); err != nil {
		t.Fatal(err)
	}
	if err := writeFieldName(w, "x"); err != nil {
		t.Fatal(err)
	}
	if err := writeMarker(w, Marker{Inner: MarkerObject}); err != nil {
		t.Fatal(err)
	}
	if err := writeObjectChain(w, 19); err != nil {
		t.Fatal(err)
	}

	if _, err := FromBytes(w.Bytes(), newEmptyRecordBuilder); err != nil {
		t.Errorf("expected success one level under the skip-depth bound, got %v", err)
	}
}
