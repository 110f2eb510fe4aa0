// response.go: Monero daemon RPC response records
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// Package rpc holds the Monero daemon RPC response record types used to
// demonstrate the epee codec's flatten and nested-object handling against
// real protocol shapes.
package rpc

//go:generate go run github.com/agilira/epee/cmd/epeegen -type BaseResponse,GetOIndexesResponse,GetOutsResponse,OutKey

// BaseResponse carries the status envelope every daemon RPC reply embeds.
type BaseResponse struct {
	Credits   uint64 `epee:"credits" json:"credits"`
	Status    string `epee:"status" json:"status"`
	TopHash   string `epee:"top_hash" json:"top_hash"`
	Untrusted bool   `epee:"untrusted" json:"untrusted"`
}

// GetOIndexesResponse answers a get_o_indexes request: the base envelope
// plus the output indexes themselves.
type GetOIndexesResponse struct {
	Base     BaseResponse `epee:"base" json:"base"`
	OIndexes []uint64     `epee:"o_indexes" json:"o_indexes"`
}

// OutKey describes one transaction output as returned by get_outs.
type OutKey struct {
	Height   uint64   `epee:"height" json:"height"`
	Key      [32]byte `epee:"key" json:"key"`
	Mask     [32]byte `epee:"mask" json:"mask"`
	TxID     [32]byte `epee:"txid" json:"txid"`
	Unlocked bool     `epee:"unlocked" json:"unlocked"`
}

// GetOutsResponse answers a get_outs request. Base is flattened: its
// fields (credits, status, top_hash, untrusted) are written and read
// directly alongside outs, with no "base" wrapper object on the wire.
type GetOutsResponse struct {
	Base BaseResponse `epee:",flatten" json:"base"`
	Outs []OutKey     `epee:"outs" json:"outs"`
}
