package timer

import (
	"testing"
	"time"
)

func TestClockFiresOnPeriod(t *testing.T) {
	clock := NewClock()
	fired := 0
	tm := clock.NewTimer("walk", 100*time.Millisecond, func() { fired++ })

	clock.Advance(time.Second)
	if fired != 0 {
		t.Fatalf("stopped timer fired %d times", fired)
	}

	tm.Start()
	clock.Advance(250 * time.Millisecond)
	if fired != 2 {
		t.Errorf("expected 2 ticks, got %d", fired)
	}
	clock.Advance(50 * time.Millisecond)
	if fired != 3 {
		t.Errorf("expected 3 ticks, got %d", fired)
	}
	if clock.Now() != 1300*time.Millisecond {
		t.Errorf("unexpected clock time %v", clock.Now())
	}
}

func TestClockStartIsIdempotent(t *testing.T) {
	clock := NewClock()
	fired := 0
	tm := clock.NewTimer("idle", 100*time.Millisecond, func() { fired++ })

	tm.Start()
	clock.Advance(60 * time.Millisecond)
	tm.Start()
	clock.Advance(40 * time.Millisecond)
	if fired != 1 {
		t.Errorf("restarting a running timer must not reset its phase, got %d ticks", fired)
	}
	if !tm.IsRunning() {
		t.Error("expected running")
	}
}

func TestClockStopCancelsDueTick(t *testing.T) {
	clock := NewClock()
	var order []string
	var b Timer
	a := clock.NewTimer("a", 100*time.Millisecond, func() {
		order = append(order, "a")
		b.Stop()
	})
	b = clock.NewTimer("b", 100*time.Millisecond, func() {
		order = append(order, "b")
	})

	a.Start()
	b.Start()
	clock.Advance(100 * time.Millisecond)
	if len(order) != 1 || order[0] != "a" {
		t.Errorf("b was due but stopped first, got %v", order)
	}

	a.Stop()
	a.Stop()
	if a.IsRunning() {
		t.Error("expected stopped")
	}
}

func TestClockTimerStartedInCallback(t *testing.T) {
	clock := NewClock()
	var first, next Timer
	nextFired := 0
	first = clock.NewTimer("handoff", 30*time.Millisecond, func() {
		first.Stop()
		next.Start()
	})
	next = clock.NewTimer("next", 50*time.Millisecond, func() { nextFired++ })

	first.Start()
	clock.Advance(79 * time.Millisecond)
	if nextFired != 0 {
		t.Fatalf("next started at 30ms must not fire before 80ms, fired %d", nextFired)
	}
	clock.Advance(time.Millisecond)
	if nextFired != 1 {
		t.Errorf("expected next to fire at 80ms, fired %d", nextFired)
	}
}

func TestClampPeriod(t *testing.T) {
	clock := NewClock()
	fired := 0
	tm := clock.NewTimer("zero", 0, func() { fired++ })
	tm.Start()
	clock.Advance(5 * time.Millisecond)
	if fired != 5 {
		t.Errorf("expected a zero period clamped to 1ms, got %d ticks", fired)
	}
}
