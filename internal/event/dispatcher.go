// Package event implements the priority-ordered, multi-handler fan-out used
// throughout the core: onPlayerConnect, onStreamIn/Out, onTick, and the
// per-RPC/per-Packet handler tables in internal/dispatch all build on this.
// It generalizes open.mp's IEventDispatcher/IIndexedEventDispatcher
// (SDK/events.hpp) and the teacher's core/events/events.go EventManager
// (map-of-slices registration/trigger) with strict priority ordering.
package event

// Priority selects where in dispatch order a handler runs. Lower value
// runs first.
type Priority int

const (
	PriorityHighest Priority = iota
	PriorityFairlyHigh
	PriorityDefault
	PriorityFairlyLow
	PriorityLowest
	priorityCount
)

// StopPolicy controls how a dispatcher reacts to a bool-returning handler.
type StopPolicy int

const (
	// StopNone runs every handler regardless of return value.
	StopNone StopPolicy = iota
	// StopAtFalse halts and returns false on the first handler returning false.
	StopAtFalse
	// StopAtTrue halts and returns true on the first handler returning true.
	StopAtTrue
)

type entry[H any] struct {
	handler H
	id      uint64 // registration order within a priority bucket, for stable removal
}

// Dispatcher fans a call out to every registered handler of type H in
// priority order. H is typically a function type; callers provide the
// actual invocation via Dispatch's callback.
type Dispatcher[H any] struct {
	buckets  [priorityCount][]entry[H]
	policy   StopPolicy
	nextID   uint64
	removals []func()
}

// New returns a Dispatcher with the given stop policy.
func New[H any](policy StopPolicy) *Dispatcher[H] {
	return &Dispatcher[H]{policy: policy}
}

// Register adds handler at the given priority and returns a token that
// Remove accepts. Registration during an in-progress Dispatch call is
// permitted; the new handler is not invoked until the next Dispatch.
func (d *Dispatcher[H]) Register(priority Priority, handler H) uint64 {
	id := d.nextID
	d.nextID++
	d.buckets[priority] = append(d.buckets[priority], entry[H]{handler: handler, id: id})
	return id
}

// Remove unregisters the handler with the given token. Removal during an
// in-progress Dispatch is permitted and takes effect after the current
// dispatch completes (Dispatch snapshots its handler list up front).
func (d *Dispatcher[H]) Remove(token uint64) {
	for p := range d.buckets {
		bucket := d.buckets[p]
		for i, e := range bucket {
			if e.id == token {
				d.buckets[p] = append(bucket[:i:i], bucket[i+1:]...)
				return
			}
		}
	}
}

// Dispatch calls invoke(handler) for every registered handler in priority
// order (Highest first), honoring the configured StopPolicy. It returns the
// last bool invoke returned (or true if there were no handlers / policy is
// StopNone and the caller doesn't care).
func (d *Dispatcher[H]) Dispatch(invoke func(H) bool) bool {
	// Snapshot every bucket up front so Register/Remove called during
	// dispatch doesn't affect this pass.
	var snap [priorityCount][]entry[H]
	for p := range d.buckets {
		snap[p] = append([]entry[H](nil), d.buckets[p]...)
	}
	result := true
	for _, bucket := range snap {
		for _, e := range bucket {
			result = invoke(e.handler)
			switch d.policy {
			case StopAtFalse:
				if !result {
					return false
				}
			case StopAtTrue:
				if result {
					return true
				}
			}
		}
	}
	return result
}

// DispatchAll is a convenience for H = func(...) with no bool return: it
// always runs every handler, ignoring stop policy.
func (d *Dispatcher[H]) DispatchAll(invoke func(H)) {
	var snap [priorityCount][]entry[H]
	for p := range d.buckets {
		snap[p] = append([]entry[H](nil), d.buckets[p]...)
	}
	for _, bucket := range snap {
		for _, e := range bucket {
			invoke(e.handler)
		}
	}
}

// HandlerCount returns the total number of registered handlers, for tests.
func (d *Dispatcher[H]) HandlerCount() int {
	n := 0
	for _, b := range d.buckets {
		n += len(b)
	}
	return n
}
