// Package tick implements the fixed-rate driver loop: drain inbound,
// run due timers, run the streamer, flush outbound, fire onTick. It
// generalizes the teacher's updateLoop/sessionCleanupLoop ticker pair
// (source/server/server.go) into a single ordered loop body a caller
// steps explicitly, so it can be driven by a real ticker or by tests.
package tick

import (
	"sort"
	"time"
)

// Inbound is one queued datagram waiting to be drained at step 1.
type Inbound struct {
	Peer int
	Data []byte
}

// Timer is a one-shot or repeating callback scheduled against the tick
// clock.
type Timer struct {
	id       uint64
	deadline time.Time
	period   time.Duration // zero for one-shot
	fn       func(now time.Time)
	cancelled bool
}

// Driver runs the per-tick pipeline described in spec.md §4.H. Callers
// wire DrainInbound, RunStreamer and FlushOutbound to their own
// transport/streamer/dispatch instances; Driver only owns ordering and
// timers.
type Driver struct {
	now func() time.Time

	DrainInbound  func()
	RunStreamer   func()
	FlushOutbound func()
	OnTick        func(elapsed time.Duration)

	timers   []*Timer
	nextID   uint64
	lastTick time.Time
}

// New returns a Driver using the given clock function (time.Now in
// production; a fake clock in tests so timer behavior is deterministic).
func New(now func() time.Time) *Driver {
	return &Driver{now: now, lastTick: now()}
}

// After schedules fn to run once after d has elapsed, measured from the
// tick clock at the time of the call.
func (d *Driver) After(delay time.Duration, fn func(now time.Time)) uint64 {
	return d.schedule(delay, 0, fn)
}

// Every schedules fn to run repeatedly every period, starting after the
// first period elapses.
func (d *Driver) Every(period time.Duration, fn func(now time.Time)) uint64 {
	return d.schedule(period, period, fn)
}

func (d *Driver) schedule(delay, period time.Duration, fn func(now time.Time)) uint64 {
	id := d.nextID
	d.nextID++
	d.timers = append(d.timers, &Timer{id: id, deadline: d.now().Add(delay), period: period, fn: fn})
	return id
}

// CancelTimer prevents a scheduled timer from firing again.
func (d *Driver) CancelTimer(id uint64) {
	for _, t := range d.timers {
		if t.id == id {
			t.cancelled = true
		}
	}
}

// Step runs exactly one tick: drain inbound, run due timers, run the
// streamer, flush outbound, fire onTick. The elapsed duration passed to
// OnTick is measured against the driver's own clock, not corrected for
// drift — pace-matching is the transport's responsibility (spec.md §4.H).
func (d *Driver) Step() {
	now := d.now()
	elapsed := now.Sub(d.lastTick)
	d.lastTick = now

	if d.DrainInbound != nil {
		d.DrainInbound()
	}

	d.runDueTimers(now)

	if d.RunStreamer != nil {
		d.RunStreamer()
	}
	if d.FlushOutbound != nil {
		d.FlushOutbound()
	}
	if d.OnTick != nil {
		d.OnTick(elapsed)
	}
}

func (d *Driver) runDueTimers(now time.Time) {
	due := make([]*Timer, 0, len(d.timers))
	live := d.timers[:0]
	for _, t := range d.timers {
		if t.cancelled {
			continue
		}
		if !t.deadline.After(now) {
			due = append(due, t)
			if t.period > 0 {
				t.deadline = now.Add(t.period)
				live = append(live, t)
			}
		} else {
			live = append(live, t)
		}
	}
	d.timers = live

	sort.Slice(due, func(i, j int) bool { return due[i].id < due[j].id })
	for _, t := range due {
		t.fn(now)
	}
}

// Run drives Step on a fixed-rate ticker until stop is closed. Intended
// for production use; tests call Step directly against a fake clock.
func Run(d *Driver, rate time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.Step()
		}
	}
}
