package streamer

import "testing"

func testConfigs(radius float32, cap int) [numClasses]Config {
	var cfgs [numClasses]Config
	for i := range cfgs {
		cfgs[i] = Config{Radius: radius, Cap: cap}
	}
	return cfgs
}

func TestNoSelfMembership(t *testing.T) {
	s := New(testConfigs(100, 0))
	self := Point{X: 0, Y: 0, Z: 0}
	entities := []Entity{{Slot: 0, Pos: self}, {Slot: 1, Pos: Point{X: 1}}}
	diff := s.Recompute(0, ClassPlayer, self, 0, entities)
	for _, slot := range diff.StreamIn {
		if slot == 0 {
			t.Fatal("player streamed in to itself")
		}
	}
}

func TestDifferentVirtualWorldExcluded(t *testing.T) {
	s := New(testConfigs(100, 0))
	self := Point{VirtualWorld: 1}
	entities := []Entity{{Slot: 5, Pos: Point{VirtualWorld: 2}}}
	diff := s.Recompute(0, ClassPlayer, self, -1, entities)
	if len(diff.StreamIn) != 0 {
		t.Fatalf("expected no candidates across virtual worlds, got %v", diff.StreamIn)
	}
}

func TestMonotoneInRadius(t *testing.T) {
	self := Point{}
	entities := []Entity{{Slot: 1, Pos: Point{X: 50}}, {Slot: 2, Pos: Point{X: 150}}}

	small := New(testConfigs(100, 0))
	smallDiff := small.Recompute(0, ClassPlayer, self, -1, entities)

	large := New(testConfigs(200, 0))
	largeDiff := large.Recompute(0, ClassPlayer, self, -1, entities)

	if len(largeDiff.StreamIn) < len(smallDiff.StreamIn) {
		t.Fatalf("expected larger radius to include at least as many candidates: small=%v large=%v",
			smallDiff.StreamIn, largeDiff.StreamIn)
	}
	for _, slot := range smallDiff.StreamIn {
		found := false
		for _, s2 := range largeDiff.StreamIn {
			if s2 == slot {
				found = true
			}
		}
		if !found {
			t.Fatalf("slot %d present at small radius but missing at large radius", slot)
		}
	}
}

func TestCapRespected(t *testing.T) {
	s := New(testConfigs(1000, 2))
	self := Point{}
	entities := []Entity{
		{Slot: 1, Pos: Point{X: 10}},
		{Slot: 2, Pos: Point{X: 20}},
		{Slot: 3, Pos: Point{X: 30}},
	}
	diff := s.Recompute(0, ClassPlayer, self, -1, entities)
	if len(diff.StreamIn) > 2 {
		t.Fatalf("expected cap of 2, got %d", len(diff.StreamIn))
	}
}

func TestCapPrefersNearest(t *testing.T) {
	s := New(testConfigs(1000, 1))
	self := Point{}
	entities := []Entity{{Slot: 1, Pos: Point{X: 100}}, {Slot: 2, Pos: Point{X: 10}}}
	diff := s.Recompute(0, ClassPlayer, self, -1, entities)
	if len(diff.StreamIn) != 1 || diff.StreamIn[0] != 2 {
		t.Fatalf("expected nearest slot 2 only, got %v", diff.StreamIn)
	}
}

func TestStreamOutWhenEntityLeavesRange(t *testing.T) {
	s := New(testConfigs(50, 0))
	self := Point{}
	near := []Entity{{Slot: 1, Pos: Point{X: 10}}}
	diffIn := s.Recompute(0, ClassPlayer, self, -1, near)
	if len(diffIn.StreamIn) != 1 {
		t.Fatalf("expected slot 1 to stream in, got %v", diffIn.StreamIn)
	}

	far := []Entity{{Slot: 1, Pos: Point{X: 1000}}}
	diffOut := s.Recompute(0, ClassPlayer, self, -1, far)
	if len(diffOut.StreamOut) != 1 || diffOut.StreamOut[0] != 1 {
		t.Fatalf("expected slot 1 to stream out, got %v", diffOut.StreamOut)
	}
}

func TestForgetClearsPlayerState(t *testing.T) {
	s := New(testConfigs(50, 0))
	self := Point{}
	s.Recompute(0, ClassPlayer, self, -1, []Entity{{Slot: 1, Pos: Point{X: 10}}})
	s.Forget(0)
	if len(s.StreamedIn(0, ClassPlayer)) != 0 {
		t.Fatal("expected state cleared after Forget")
	}
}

func TestSlotAscendingDeterminism(t *testing.T) {
	s := New(testConfigs(1000, 0))
	self := Point{}
	entities := []Entity{
		{Slot: 9, Pos: Point{X: 5}},
		{Slot: 2, Pos: Point{X: 5}},
		{Slot: 5, Pos: Point{X: 5}},
	}
	diff := s.Recompute(0, ClassPlayer, self, -1, entities)
	want := []int{2, 5, 9}
	for i, slot := range diff.StreamIn {
		if slot != want[i] {
			t.Fatalf("expected slot-ascending order %v, got %v", want, diff.StreamIn)
		}
	}
}
