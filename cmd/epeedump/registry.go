// registry.go: Maps -type names to the monero record codecs epeedump drives
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/agilira/epee"
	"github.com/agilira/epee/monero/p2p"
	"github.com/agilira/epee/monero/rpc"
)

// recordType binds a -type name to the pair of conversions epeedump needs:
// epee bytes -> a JSON-able value, and a JSON document -> epee bytes.
type recordType struct {
	name     string
	fromEpee func([]byte) (any, error)
	toEpee   func([]byte) ([]byte, error)
}

var registry = map[string]recordType{}

// registerRecord wires one record type's decode/encode pair into the
// registry. decode turns a raw epee document into the Go record value
// (boxed as any so the registry can be a single flat map); encode parses
// a JSON document into a fresh zero value of the same type and
// re-encodes it as epee.
func registerRecord[T any](name string, decode func([]byte) (T, error)) {
	registry[name] = recordType{
		name: name,
		fromEpee: func(b []byte) (any, error) {
			v, err := decode(b)
			return v, err
		},
		toEpee: func(j []byte) ([]byte, error) {
			var v T
			if err := json.Unmarshal(j, &v); err != nil {
				return nil, fmt.Errorf("decode JSON for %s: %w", name, err)
			}
			obj, ok := any(&v).(epee.Object)
			if !ok {
				return nil, fmt.Errorf("%s does not implement epee.Object", name)
			}
			return epee.ToBytes(obj)
		},
	}
}

func init() {
	registerRecord("BasicNodeData", func(b []byte) (p2p.BasicNodeData, error) {
		return epee.FromBytes(b, p2p.NewBasicNodeDataBuilder)
	})
	registerRecord("HandshakeResponse", func(b []byte) (p2p.HandshakeResponse, error) {
		return epee.FromBytes(b, p2p.NewHandshakeResponseBuilder)
	})
	registerRecord("BaseResponse", func(b []byte) (rpc.BaseResponse, error) {
		return epee.FromBytes(b, rpc.NewBaseResponseBuilder)
	})
	registerRecord("GetOIndexesResponse", func(b []byte) (rpc.GetOIndexesResponse, error) {
		return epee.FromBytes(b, rpc.NewGetOIndexesResponseBuilder)
	})
	registerRecord("GetOutsResponse", func(b []byte) (rpc.GetOutsResponse, error) {
		return epee.FromBytes(b, rpc.NewGetOutsResponseBuilder)
	})
	registerRecord("OutKey", func(b []byte) (rpc.OutKey, error) {
		return epee.FromBytes(b, rpc.NewOutKeyBuilder)
	})
}

// recordTypeNames returns the known -type values, sorted, for -help text.
func recordTypeNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// lookupRecordType returns the registered codec pair for name, or an
// error listing the valid choices.
func lookupRecordType(name string) (recordType, error) {
	rt, ok := registry[name]
	if !ok {
		return recordType{}, fmt.Errorf("unknown -type %q; known types: %v", name, recordTypeNames())
	}
	return rt, nil
}
