package event

import "sync"

// IndexedDispatcher fans a call out to handlers registered against a
// specific uint8 index (per-RPC or per-Packet ID), used by internal/dispatch
// to implement the router's rpc_handlers[id]/packet_handlers[id] tables.
type IndexedDispatcher[H any] struct {
	mu     sync.Mutex
	byID   map[uint8]*Dispatcher[H]
	policy StopPolicy
}

// NewIndexed returns an IndexedDispatcher with the given stop policy applied
// uniformly to every index's sub-dispatcher.
func NewIndexed[H any](policy StopPolicy) *IndexedDispatcher[H] {
	return &IndexedDispatcher[H]{byID: make(map[uint8]*Dispatcher[H]), policy: policy}
}

// Register adds handler at priority for the given index.
func (d *IndexedDispatcher[H]) Register(index uint8, priority Priority, handler H) uint64 {
	d.mu.Lock()
	sub, ok := d.byID[index]
	if !ok {
		sub = New[H](d.policy)
		d.byID[index] = sub
	}
	d.mu.Unlock()
	return sub.Register(priority, handler)
}

// Remove unregisters a handler previously registered at index.
func (d *IndexedDispatcher[H]) Remove(index uint8, token uint64) {
	d.mu.Lock()
	sub, ok := d.byID[index]
	d.mu.Unlock()
	if ok {
		sub.Remove(token)
	}
}

// HasHandlers reports whether any handler is registered for index.
func (d *IndexedDispatcher[H]) HasHandlers(index uint8) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	sub, ok := d.byID[index]
	return ok && sub.HandlerCount() > 0
}

// Dispatch calls invoke(handler) for every handler registered at index, in
// priority order, honoring the stop policy. Returns true if there were no
// handlers (nothing to veto).
func (d *IndexedDispatcher[H]) Dispatch(index uint8, invoke func(H) bool) bool {
	d.mu.Lock()
	sub, ok := d.byID[index]
	d.mu.Unlock()
	if !ok {
		return true
	}
	return sub.Dispatch(invoke)
}
