// Package streamer implements the per-tick area-of-interest diff that
// decides, for every player and every streamed entity class, which
// entities are currently candidates for stream-in and which previously
// streamed entities have fallen out of range. It generalizes the
// teacher's single nearest-peer broadcast loop into a class-indexed,
// capped, slot-ascending diff.
package streamer

import "sort"

// Point is the minimal position/world the streamer needs from an entity;
// callers adapt their own entity types into it.
type Point struct {
	X, Y, Z      float32
	VirtualWorld uint32
	Interior     uint8
}

func distSq(a, b Point) float32 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// Config holds the per-class radius and cap. Radius is in game units;
// Cap is the maximum number of entities of that class a player may have
// streamed in simultaneously (0 means unlimited).
type Config struct {
	Radius float32
	Cap    int
}

// Class indexes the candidate set cache the streamer maintains per
// player per entity class.
type Class int

const (
	ClassPlayer Class = iota
	ClassVehicle
	ClassObject
	ClassActor
	ClassPickup
	ClassTextLabel
	numClasses
)

// Source is the read side of one entity class: every live entity's slot
// and position. Entries are expected in slot-ascending order (Pool.
// Entries already guarantees this).
type Source func() []Entity

// Entity is a single candidate: its pool slot and current position.
type Entity struct {
	Slot int
	Pos  Point
}

// Diff is the result of recomputing one player's candidate set for one
// class: entities newly in range (StreamIn) and entities that dropped
// out (StreamOut), both slot-ascending.
type Diff struct {
	StreamIn  []int
	StreamOut []int
}

// Streamer holds, per player, per class, the set of currently streamed
// slots — the state the next tick's diff is computed against.
type Streamer struct {
	configs [numClasses]Config
	state   map[int][numClasses]map[int]bool
}

func New(configs [numClasses]Config) *Streamer {
	return &Streamer{configs: configs, state: make(map[int][numClasses]map[int]bool)}
}

func (s *Streamer) ensure(playerID int) [numClasses]map[int]bool {
	sets, ok := s.state[playerID]
	if !ok {
		for i := range sets {
			sets[i] = make(map[int]bool)
		}
		s.state[playerID] = sets
	}
	return sets
}

// Forget drops all per-class streamed state for a disconnected player.
func (s *Streamer) Forget(playerID int) {
	delete(s.state, playerID)
}

// Recompute runs one tick's diff for a single player against a single
// entity class, excluding selfSlot (so a player is never its own
// candidate — only meaningful for ClassPlayer, harmless elsewhere since
// selfSlot won't match any entity in a different pool's ID space when
// passed consistently).
func (s *Streamer) Recompute(playerID int, class Class, self Point, selfSlot int, entities []Entity) Diff {
	cfg := s.configs[class]
	sets := s.ensure(playerID)
	streamed := sets[class]

	candidates := make([]Entity, 0, len(entities))
	r2 := cfg.Radius * cfg.Radius
	for _, e := range entities {
		if e.Slot == selfSlot {
			continue
		}
		if e.Pos.VirtualWorld != self.VirtualWorld {
			continue
		}
		if distSq(self, e.Pos) <= r2 {
			candidates = append(candidates, e)
		}
	}

	if cfg.Cap > 0 && len(candidates) > cfg.Cap {
		sort.SliceStable(candidates, func(i, j int) bool {
			di, dj := distSq(self, candidates[i].Pos), distSq(self, candidates[j].Pos)
			if di != dj {
				return di < dj
			}
			return candidates[i].Slot < candidates[j].Slot
		})
		candidates = candidates[:cfg.Cap]
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].Slot < candidates[j].Slot })
	}

	candidateSet := make(map[int]bool, len(candidates))
	var diff Diff
	for _, e := range candidates {
		candidateSet[e.Slot] = true
		if !streamed[e.Slot] {
			diff.StreamIn = append(diff.StreamIn, e.Slot)
		}
	}
	for slot := range streamed {
		if !candidateSet[slot] {
			diff.StreamOut = append(diff.StreamOut, slot)
		}
	}
	sort.Ints(diff.StreamIn)
	sort.Ints(diff.StreamOut)

	for _, slot := range diff.StreamIn {
		streamed[slot] = true
	}
	for _, slot := range diff.StreamOut {
		delete(streamed, slot)
	}
	sets[class] = streamed
	s.state[playerID] = sets
	return diff
}

// StreamedIn returns the slot-ascending set of entities of class
// currently streamed in to playerID.
func (s *Streamer) StreamedIn(playerID int, class Class) []int {
	sets, ok := s.state[playerID]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(sets[class]))
	for slot := range sets[class] {
		out = append(out, slot)
	}
	sort.Ints(out)
	return out
}
