// Package dispatch implements the router that owns the per-RPC and
// per-Packet handler tables and turns a raw inbound datagram into a
// decoded Message handed to registered handlers. It generalizes the
// teacher's handleGamePacket switch (source/server/server.go) into a
// table-driven router keyed by (category, id), backed by
// internal/protocol.Catalog for decoding and internal/event.IndexedDispatcher
// for fan-out.
package dispatch

import (
	"github.com/ventosilenzioso/samp-server-go/internal/bitstream"
	"github.com/ventosilenzioso/samp-server-go/internal/event"
	"github.com/ventosilenzioso/samp-server-go/internal/protocol"
)

// Handler processes one decoded message for one peer. Returning false
// vetoes further propagation (StopAtFalse) — used for ACLs and anti-cheat
// filters that must be able to silently drop a message.
type Handler func(peer int, msg protocol.Message) bool

// Router owns rpc_handlers[id] and packet_handlers[id], plus a per-peer
// global dispatcher invoked before the index-specific handlers.
type Router struct {
	catalog *protocol.Catalog
	rpc     *event.IndexedDispatcher[Handler]
	packet  *event.IndexedDispatcher[Handler]
	global  *event.Dispatcher[Handler]

	malformedCounts map[int]int
}

// New returns a Router with StopAtFalse semantics on every table, ready
// to register handlers against.
func New(catalog *protocol.Catalog) *Router {
	return &Router{
		catalog:         catalog,
		rpc:             event.NewIndexed[Handler](event.StopAtFalse),
		packet:          event.NewIndexed[Handler](event.StopAtFalse),
		global:          event.New[Handler](event.StopAtFalse),
		malformedCounts: make(map[int]int),
	}
}

// OnRPC registers a handler for a specific RPC id at priority.
func (r *Router) OnRPC(id uint8, priority event.Priority, h Handler) uint64 {
	return r.rpc.Register(id, priority, h)
}

// OnPacket registers a handler for a specific Packet id at priority.
func (r *Router) OnPacket(id uint8, priority event.Priority, h Handler) uint64 {
	return r.packet.Register(id, priority, h)
}

// OnAny registers a global handler invoked for every inbound message
// before the index-specific tables, regardless of category.
func (r *Router) OnAny(priority event.Priority, h Handler) uint64 {
	return r.global.Register(priority, h)
}

// MalformedCount returns how many malformed reads have been recorded for
// peer, for external ban/kick policy to consult.
func (r *Router) MalformedCount(peer int) int {
	return r.malformedCounts[peer]
}

// ForgetPeer drops a disconnected peer's malformed-packet counter.
func (r *Router) ForgetPeer(peer int) {
	delete(r.malformedCounts, peer)
}

// Dispatch decodes one inbound datagram's body for (category, id) and
// runs the global dispatcher then the index-specific table against it.
// A decode failure increments the peer's malformed counter and the
// message is dropped without reaching any handler, per spec.md §7.
func (r *Router) Dispatch(peer int, category protocol.Category, id uint8, bs *bitstream.BitStream) error {
	msg, ok := r.catalog.New(category, id)
	if !ok {
		return protocol.ErrUnknownID
	}
	if err := msg.Read(bs); err != nil {
		r.malformedCounts[peer]++
		return err
	}

	if !r.global.Dispatch(func(h Handler) bool { return h(peer, msg) }) {
		return nil
	}

	var table *event.IndexedDispatcher[Handler]
	switch category {
	case protocol.CategoryRPC, protocol.CategoryConnection:
		table = r.rpc
	case protocol.CategoryPacket:
		table = r.packet
	default:
		return nil
	}
	table.Dispatch(id, func(h Handler) bool { return h(peer, msg) })
	return nil
}
