// node_data.go: Monero P2P handshake records
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// Package p2p holds the Monero peer-to-peer handshake record types used
// to demonstrate the epee codec against real protocol shapes.
package p2p

//go:generate go run github.com/agilira/epee/cmd/epeegen -type BasicNodeData,HandshakeResponse

// BasicNodeData is exchanged during the P2P handshake to identify a peer
// and its network.
type BasicNodeData struct {
	MyPort       uint32   `epee:"my_port" json:"my_port"`
	NetworkID    [16]byte `epee:"network_id" json:"network_id"`
	PeerID       uint64   `epee:"peer_id" json:"peer_id"`
	SupportFlags uint32   `epee:"support_flags" json:"support_flags"`
}

// HandshakeResponse wraps BasicNodeData under the wire name "node_data"
// (the field is named NodeData here but the original protocol's field
// was renamed via an attribute) plus a defaulted protocol-test byte.
type HandshakeResponse struct {
	NodeData BasicNodeData `epee:"node_data" json:"node_data"`
	Test     uint8         `epee:"test" epeedefault:"0" json:"test"`
}
