// Package protocol implements the SA-MP 0.3.7 RPC/Packet catalog: typed
// message definitions with stable wire IDs, read/write contracts, and the
// (Category, ID)-keyed registry the dispatch router looks messages up in.
//
// Grounded on source/protocol/rpc.go's RPC_* constants and byte-builder
// functions (generalized here into typed structs with symmetric read/write)
// and on original_source/SDK/netcode.hpp for exact per-field wire order.
package protocol

import "github.com/ventosilenzioso/samp-server-go/internal/bitstream"

// Category distinguishes the three message families named in spec.md §3.
// Identity of a message on the wire is (ID, Category): RPC 128 and Packet
// 128 are unrelated messages.
type Category int

const (
	CategoryRPC Category = iota
	CategoryPacket
	CategoryConnection
)

func (c Category) String() string {
	switch c {
	case CategoryRPC:
		return "RPC"
	case CategoryPacket:
		return "Packet"
	case CategoryConnection:
		return "Connection"
	default:
		return "Unknown"
	}
}

// Channel selects which ordered stream a message's reliability/ordering is
// carried over at the transport layer. The core never reorders across
// channels but preserves intra-channel order (spec.md §4.I, §5).
type Channel int

const (
	ChannelInternal Channel = iota
	ChannelSyncRPC
	ChannelSyncPacket
	ChannelUnordered
)

// Key identifies a message uniquely: (Category, ID).
type Key struct {
	Category Category
	ID       uint8
}

// Message is implemented by every RPC/Packet body. ID/Category/Channel are
// exposed as methods (rather than struct tags) so the catalog can look them
// up without reflection.
type Message interface {
	MessageID() uint8
	MessageCategory() Category
	MessageChannel() Channel
	Read(bs *bitstream.BitStream) error
	Write(bs *bitstream.BitStream)
}

// Factory constructs a zero-value Message ready to have Read called on it.
type Factory func() Message
