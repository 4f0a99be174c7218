package pool

import "testing"

type thing struct{ Value int }

func TestClaimGivesAllocated(t *testing.T) {
	p := New[thing](4)
	i, ok := p.Claim()
	if !ok {
		t.Fatal("expected claim to succeed")
	}
	if p.Get(i) == nil {
		t.Fatal("expected get to return non-nil after claim")
	}
}

func TestReleaseClearsAbsentLock(t *testing.T) {
	p := New[thing](4)
	i, _ := p.Claim()
	p.Release(i)
	if p.Get(i) != nil {
		t.Fatal("expected get to return nil after release")
	}
}

func TestClaimHintReturnsHintWhenFree(t *testing.T) {
	p := New[thing](4)
	i, ok := p.ClaimHint(2)
	if !ok || i != 2 {
		t.Fatalf("expected hint 2 to be honored, got %d ok=%v", i, ok)
	}
}

func TestClaimHintFallsBackWhenTaken(t *testing.T) {
	p := New[thing](4)
	p.ClaimHint(2)
	i, ok := p.ClaimHint(2)
	if !ok || i == 2 {
		t.Fatalf("expected fallback away from taken hint, got %d", i)
	}
}

func TestReleaseUnderLockIsDeferred(t *testing.T) {
	p := New[thing](4)
	i, _ := p.Claim()
	p.Lock(i)
	p.Release(i)
	if p.Get(i) == nil {
		t.Fatal("expected entry to survive release while locked")
	}
	p.Unlock(i)
	if p.Get(i) != nil {
		t.Fatal("expected entry to be released after unlock")
	}
}

func TestReleaseNotifiesOnce(t *testing.T) {
	p := New[thing](4)
	count := 0
	p.Subscribe(nil, func(int) { count++ })
	i, _ := p.Claim()
	p.Lock(i)
	p.Release(i)
	p.Unlock(i)
	if count != 1 {
		t.Fatalf("expected exactly one release notification, got %d", count)
	}
}

func TestEntriesAreSlotAscending(t *testing.T) {
	p := New[thing](8)
	p.ClaimHint(5)
	p.ClaimHint(1)
	p.ClaimHint(3)
	entries := p.Entries()
	want := []int{1, 3, 5}
	if len(entries) != len(want) {
		t.Fatalf("got %v want %v", entries, want)
	}
	for i, v := range want {
		if entries[i] != v {
			t.Fatalf("got %v want %v", entries, want)
		}
	}
}

func TestCapacityExhaustion(t *testing.T) {
	p := New[thing](2)
	p.Claim()
	p.Claim()
	if _, ok := p.Claim(); ok {
		t.Fatal("expected claim to fail at capacity")
	}
}

func TestLegacyIDBijective(t *testing.T) {
	m := NewLegacyIDMap(4)
	legacy := m.ReserveLegacyID()
	m.Bind(legacy, 2)
	internal, ok := m.ToInternal(legacy)
	if !ok || internal != 2 {
		t.Fatalf("got %d ok=%v", internal, ok)
	}
	gotLegacy, ok := m.ToLegacy(2)
	if !ok || gotLegacy != legacy {
		t.Fatalf("got %d ok=%v", gotLegacy, ok)
	}
	m.ReleaseLegacyID(legacy)
	if _, ok := m.ToInternal(legacy); ok {
		t.Fatal("expected unbound after release")
	}
	if _, ok := m.ToLegacy(2); ok {
		t.Fatal("expected reverse mapping cleared after release")
	}
}
