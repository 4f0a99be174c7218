// Package transport implements the UDP-facing RakNet envelope: datagram
// reliability/ordering, ACK/NACK bookkeeping, and per-peer session state.
// It owns the socket and the wire envelope; it does not know about game
// messages — internal/dispatch decodes message bodies once transport
// hands it a peer id and a payload.
//
// Adapted from source/protocol/raknet.go's DataPacket/Session/ACK/NACK
// types, trimmed to the envelope fields this core still needs (sequence
// numbers, reliability flags, ordering channel) since split-packet
// reassembly and MTU negotiation are genuinely external-transport
// concerns spec.md §1 keeps out of the core's responsibility.
package transport

import (
	"net"
	"time"
)

// Channel selects which of the core's ordering streams a send belongs
// to; it is distinct from protocol.Channel only by package boundary —
// the transport must preserve intra-channel order but never needs to
// decode the payload to do so.
type Channel uint8

const (
	ChannelInternal Channel = iota
	ChannelSyncRPC
	ChannelSyncPacket
	ChannelUnordered
)

// Reliability selects the RakNet delivery guarantee for one send.
type Reliability uint8

const (
	Unreliable Reliability = iota
	UnreliableSequenced
	Reliable
	ReliableOrdered
	ReliableSequenced
)

// NetworkStats is the per-peer counter set spec.md §6 exposes for
// external ban/monitoring policy to consult.
type NetworkStats struct {
	PacketsSent     uint64
	PacketsReceived uint64
	BytesSent       uint64
	BytesReceived   uint64
	PacketLoss      float32
	MalformedCount  int
	RTT             time.Duration
}

// PeerEvent is what the transport hands the core on connect/disconnect,
// distinct from any decoded message.
type PeerEvent struct {
	Peer int
	Addr *net.UDPAddr
}

// Transport is the send/stats/ban contract of a transport implementation;
// the concrete UDP implementation (UDPTransport) satisfies it.
type Transport interface {
	SendRPC(peer int, channel Channel, id uint8, payload []byte) error
	SendPacket(peer int, channel Channel, id uint8, payload []byte) error
	BroadcastRPC(peers []int, channel Channel, id uint8, payload []byte) error
	Stats(peer int) (NetworkStats, bool)
	Ban(addr string, reason string) error
	Unban(addr string) error
}
