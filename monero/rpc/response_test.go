// response_test.go: Round-trip tests for the RPC response records
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package rpc

import (
	"testing"

	"github.com/agilira/epee"
	"github.com/google/go-cmp/cmp"
)

func TestBaseResponseRoundTrip(t *testing.T) {
	want := BaseResponse{
		Credits:   100,
		Status:    "OK",
		TopHash:   "",
		Untrusted: false,
	}
	data, err := epee.ToBytes(&want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := epee.FromBytes(data, NewBaseResponseBuilder)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGetOIndexesResponseEmptySequenceSuppressed(t *testing.T) {
	resp := &GetOIndexesResponse{
		Base:     BaseResponse{Credits: 0, Status: "OK", TopHash: "abc", Untrusted: true},
		OIndexes: nil,
	}
	if got := resp.NumberOfFields(); got != 1 {
		t.Errorf("NumberOfFields = %d, want 1 (o_indexes suppressed)", got)
	}

	data, err := epee.ToBytes(resp)
	if err != nil {
		t.Fatal(err)
	}
	got, err := epee.FromBytes(data, NewGetOIndexesResponseBuilder)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.OIndexes) != 0 {
		t.Errorf("OIndexes = %v, want empty", got.OIndexes)
	}
	if diff := cmp.Diff(resp.Base, got.Base); diff != "" {
		t.Errorf("Base mismatch (-want +got):\n%s", diff)
	}
}

func TestGetOIndexesResponseWithValues(t *testing.T) {
	resp := &GetOIndexesResponse{
		Base:     BaseResponse{Credits: 7, Status: "OK", TopHash: "deadbeef", Untrusted: false},
		OIndexes: []uint64{1, 2, 3, 4096},
	}
	if got := resp.NumberOfFields(); got != 2 {
		t.Errorf("NumberOfFields = %d, want 2", got)
	}

	data, err := epee.ToBytes(resp)
	if err != nil {
		t.Fatal(err)
	}
	got, err := epee.FromBytes(data, NewGetOIndexesResponseBuilder)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(resp.OIndexes, got.OIndexes); diff != "" {
		t.Errorf("OIndexes mismatch (-want +got):\n%s", diff)
	}
}

func TestGetOutsResponseFlatten(t *testing.T) {
	resp := &GetOutsResponse{
		Base: BaseResponse{Credits: 3, Status: "OK", TopHash: "", Untrusted: true},
		Outs: []OutKey{
			{Height: 10, Unlocked: true},
			{Height: 20, Unlocked: false},
		},
	}
	// 4 base fields + 1 outs field, no wrapper object for base.
	if got := resp.NumberOfFields(); got != 5 {
		t.Errorf("NumberOfFields = %d, want 5", got)
	}

	data, err := epee.ToBytes(resp)
	if err != nil {
		t.Fatal(err)
	}
	got, err := epee.FromBytes(data, NewGetOutsResponseBuilder)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(*resp, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGetOutsResponseEmptyOutsSuppressed(t *testing.T) {
	resp := &GetOutsResponse{
		Base: BaseResponse{Credits: 0, Status: "OK", TopHash: "", Untrusted: false},
	}
	if got := resp.NumberOfFields(); got != 4 {
		t.Errorf("NumberOfFields = %d, want 4 (outs suppressed)", got)
	}
}
