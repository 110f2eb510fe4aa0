// generator_test.go: golden-file coverage for the generator pipeline
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// TestGenerate_MoneroP2P regenerates monero/p2p's companion file and
// checks it still matches what is checked into the tree. A mismatch here
// means node_data_epee.go was hand-edited out of sync with the generator
// (or the generator changed behavior) without anyone re-running it.
func TestGenerate_MoneroP2P(t *testing.T) {
	assertGoldenMatch(t, "../../monero/p2p", []string{"BasicNodeData", "HandshakeResponse"}, "../../monero/p2p/node_data_epee.go")
}

// TestGenerate_MoneroRPC is the same check for monero/rpc, covering the
// flatten path (GetOutsResponse) alongside plain and sequence fields.
func TestGenerate_MoneroRPC(t *testing.T) {
	assertGoldenMatch(t, "../../monero/rpc", []string{"BaseResponse", "GetOIndexesResponse", "GetOutsResponse", "OutKey"}, "../../monero/rpc/response_epee.go")
}

func assertGoldenMatch(t *testing.T, dir string, types []string, goldenPath string) {
	t.Helper()
	g, err := newGenerator(dir, types)
	if err != nil {
		t.Fatalf("newGenerator(%s): %v", dir, err)
	}
	got, err := g.generate()
	if err != nil {
		t.Fatalf("generate(%s): %v", dir, err)
	}
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file %s: %v", goldenPath, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("generated output for %s does not match %s\n--- got ---\n%s", dir, goldenPath, got)
	}
}

// TestGenerate_BytesField proves a growable []byte field is accepted and
// routed through the byte-string codec instead of being rejected.
func TestGenerate_BytesField(t *testing.T) {
	g, err := newGenerator("testdata/fixtures", []string{"Blob"})
	if err != nil {
		t.Fatalf("newGenerator: %v", err)
	}
	src, err := g.generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(src)
	for _, want := range []string{"epee.WriteBytes(w, b.Payload)", "epee.ReadBytes(r, m)"} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

// TestGenerate_BoolSequenceAndDerivedName proves a []bool field routes
// through the bool-sequence codec and that an empty tag name falls back
// to the lower_snake_case of the Go field name.
func TestGenerate_BoolSequenceAndDerivedName(t *testing.T) {
	g, err := newGenerator("testdata/fixtures", []string{"Flags"})
	if err != nil {
		t.Fatalf("newGenerator: %v", err)
	}
	src, err := g.generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(src)
	for _, want := range []string{
		`epee.WriteFieldName(w, "active_spans")`,
		"epee.WriteBoolSequence(w, f.ActiveSpans)",
		"epee.ReadBoolSequence(r, m)",
		"epee.ShouldWriteSequence(f.ActiveSpans)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

// TestGenerate_OptionalScalar proves a pointer-to-scalar field emits the
// absence-suppressed write and the take-address read, rather than being
// treated as a nested record.
func TestGenerate_OptionalScalar(t *testing.T) {
	g, err := newGenerator("testdata/fixtures", []string{"Maybe"})
	if err != nil {
		t.Fatalf("newGenerator: %v", err)
	}
	src, err := g.generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(src)
	for _, want := range []string{
		"if m.Val != nil {",
		"epee.WriteUint8(w, *m.Val)",
		"epee.ReadUint8(r, m)",
		"b.rec.Val = &v",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

// TestGenerate_FlattenWithPlainField locks the field-count formula for a
// record mixing a flattened child with a plain always-written field: the
// flatten delegation must add the record's own fixed count, not replace
// it. GetOutsResponse never catches a regression here because its only
// non-flatten field is a suppressed sequence.
func TestGenerate_FlattenWithPlainField(t *testing.T) {
	g, err := newGenerator("testdata/fixtures", []string{"Sample"})
	if err != nil {
		t.Fatalf("newGenerator: %v", err)
	}
	src, err := g.generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(src)
	for _, want := range []string{
		"n := s.Envelope.NumberOfFields() + 1",
		`epee.WriteField(w, "h"`,
		"return b.envelope.AddField(name, r)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated output missing %q:\n%s", want, out)
		}
	}
}

// TestGenerate_FlattenWithDefaultRejected and TestGenerate_FlattenWithRenameRejected
// cover the two invalid tag combinations generation must reject: a
// flatten field cannot also carry epeedefault or a renamed
// wire name, since flattening delegates field framing entirely to the
// nested type.
func TestGenerate_FlattenWithDefaultRejected(t *testing.T) {
	_, err := newGenerator("testdata/invalid_flatten_default", []string{"Outer"})
	if err == nil {
		t.Fatal("expected an error for epee_flatten combined with epeedefault")
	}
	if !strings.Contains(err.Error(), "epee_flatten") {
		t.Errorf("error %q does not mention epee_flatten", err)
	}
}

func TestGenerate_FlattenWithRenameRejected(t *testing.T) {
	_, err := newGenerator("testdata/invalid_flatten_rename", []string{"Outer"})
	if err == nil {
		t.Fatal("expected an error for epee_flatten combined with a renamed wire name")
	}
	if !strings.Contains(err.Error(), "epee_flatten") {
		t.Errorf("error %q does not mention epee_flatten", err)
	}
}
