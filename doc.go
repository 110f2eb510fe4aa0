// Package epee implements Monero's Epee binary wire encoding: a
// self-describing, tagged, length-prefixed serialization format used by
// Monero's peer-to-peer and RPC protocols.
//
// The package is split into the wire primitives (varints, markers,
// header, the per-type value codec) and the object engine that drives a
// record through an Object/Builder contract. Application records do not
// implement that contract by hand; the epeegen tool (cmd/epeegen)
// generates it from a struct declaration and its field tags, the same
// way the standard library's stringer generates String() methods.
//
// # Key Features
//
//   - Full Epee wire compatibility: header, varints, markers, objects,
//     sequences, byte-strings, fixed-size arrays
//   - Default-value suppression, optional fields, and flattened nesting
//   - Unknown-field tolerance with a bounded skip depth
//   - Code generation from struct tags instead of hand-written builders
//
// # Quick Start
//
// Given a generated record type (see cmd/epeegen and the monero/p2p,
// monero/rpc packages for real examples):
//
//	data, err := epee.ToBytes(&node)
//	if err != nil {
//		panic(err)
//	}
//
//	decoded, err := epee.FromBytes(data, p2p.NewBasicNodeDataBuilder)
//	if err != nil {
//		panic(err)
//	}
//
// # Generating record code
//
//	//go:generate go run github.com/agilira/epee/cmd/epeegen -type BasicNodeData
//	type BasicNodeData struct {
//		MyPort       uint32   `epee:"my_port"`
//		NetworkID    [16]byte `epee:"network_id"`
//		PeerID       uint64   `epee:"peer_id"`
//		SupportFlags uint32   `epee:"support_flags"`
//	}
package epee
