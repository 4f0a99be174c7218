package tick

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestStepRunsPipelineInOrder(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := New(clock.now)

	var order []string
	d.DrainInbound = func() { order = append(order, "drain") }
	d.RunStreamer = func() { order = append(order, "stream") }
	d.FlushOutbound = func() { order = append(order, "flush") }
	d.OnTick = func(time.Duration) { order = append(order, "tick") }

	d.Step()

	want := []string{"drain", "stream", "flush", "tick"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestTimerFiresOnlyWhenDue(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := New(clock.now)
	fired := 0
	d.After(100*time.Millisecond, func(time.Time) { fired++ })

	d.Step()
	if fired != 0 {
		t.Fatalf("expected timer not yet due, fired=%d", fired)
	}

	clock.advance(150 * time.Millisecond)
	d.Step()
	if fired != 1 {
		t.Fatalf("expected timer to fire once, fired=%d", fired)
	}

	clock.advance(150 * time.Millisecond)
	d.Step()
	if fired != 1 {
		t.Fatalf("expected one-shot timer not to fire again, fired=%d", fired)
	}
}

func TestEveryRepeats(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := New(clock.now)
	fired := 0
	d.Every(50*time.Millisecond, func(time.Time) { fired++ })

	for i := 0; i < 3; i++ {
		clock.advance(50 * time.Millisecond)
		d.Step()
	}
	if fired != 3 {
		t.Fatalf("expected 3 firings, got %d", fired)
	}
}

func TestCancelTimerPreventsFiring(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := New(clock.now)
	fired := 0
	id := d.After(10*time.Millisecond, func(time.Time) { fired++ })
	d.CancelTimer(id)

	clock.advance(20 * time.Millisecond)
	d.Step()
	if fired != 0 {
		t.Fatalf("expected cancelled timer not to fire, fired=%d", fired)
	}
}

func TestTimersFireInRegistrationOrder(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	d := New(clock.now)
	var order []int
	d.After(10*time.Millisecond, func(time.Time) { order = append(order, 1) })
	d.After(10*time.Millisecond, func(time.Time) { order = append(order, 2) })

	clock.advance(20 * time.Millisecond)
	d.Step()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected registration order [1 2], got %v", order)
	}
}
