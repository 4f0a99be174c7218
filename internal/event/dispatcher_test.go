package event

import "testing"

func TestStopAtFalseHaltsLowerPriority(t *testing.T) {
	d := New[func() bool](StopAtFalse)
	lowCalls := 0
	d.Register(PriorityHighest, func() bool { return false })
	d.Register(PriorityLowest, func() bool { lowCalls++; return true })

	result := d.Dispatch(func(h func() bool) bool { return h() })
	if result {
		t.Fatal("expected dispatch to report false")
	}
	if lowCalls != 0 {
		t.Fatalf("expected low-priority handler not to run, got %d calls", lowCalls)
	}
}

func TestStopNoneRunsAllHandlers(t *testing.T) {
	d := New[func() bool](StopNone)
	lowCalls := 0
	d.Register(PriorityHighest, func() bool { return false })
	d.Register(PriorityLowest, func() bool { lowCalls++; return true })

	d.Dispatch(func(h func() bool) bool { return h() })
	if lowCalls != 1 {
		t.Fatalf("expected low-priority handler to run under StopNone, got %d calls", lowCalls)
	}
}

func TestPriorityOrder(t *testing.T) {
	d := New[func()](StopNone)
	var order []int
	d.Register(PriorityLowest, func() { order = append(order, 5) })
	d.Register(PriorityHighest, func() { order = append(order, 1) })
	d.Register(PriorityDefault, func() { order = append(order, 3) })
	d.DispatchAll(func(h func()) { h() })
	want := []int{1, 3, 5}
	if len(order) != len(want) {
		t.Fatalf("got %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v want %v", order, want)
		}
	}
}

func TestRemoveDuringDispatchTakesEffectNextRound(t *testing.T) {
	d := New[func()](StopNone)
	calls := 0
	var token uint64
	token = d.Register(PriorityDefault, func() {
		calls++
		d.Remove(token)
	})
	d.DispatchAll(func(h func()) { h() })
	d.DispatchAll(func(h func()) { h() })
	if calls != 1 {
		t.Fatalf("expected handler removed after first dispatch, got %d calls", calls)
	}
}

func TestIndexedDispatchIsolatesByID(t *testing.T) {
	d := NewIndexed[func() bool](StopAtFalse)
	var gotA, gotB bool
	d.Register(1, PriorityDefault, func() bool { gotA = true; return true })
	d.Register(2, PriorityDefault, func() bool { gotB = true; return true })

	d.Dispatch(1, func(h func() bool) bool { return h() })
	if !gotA || gotB {
		t.Fatalf("expected only index 1 handler to run: gotA=%v gotB=%v", gotA, gotB)
	}
}

func TestIndexedDispatchNoHandlersReturnsTrue(t *testing.T) {
	d := NewIndexed[func() bool](StopAtFalse)
	if !d.Dispatch(9, func(h func() bool) bool { return h() }) {
		t.Fatal("expected true when no handlers registered")
	}
}
