package animation

import (
	"fmt"
	"testing"
	"time"

	"github.com/wagner-austin/bunny/timer"
)

var testTiming = Timing{
	Idle:       100 * time.Millisecond,
	Walk:       50 * time.Millisecond,
	Jump:       40 * time.Millisecond,
	Transition: 30 * time.Millisecond,
	Hop:        60 * time.Millisecond,
}

// testFrames gives every set n frames named "<set>:<i>".
func testFrames(n int) *BunnyFrames {
	frames := &BunnyFrames{}
	for name, set := range frames.Named() {
		for i := 0; i < n; i++ {
			*set = append(*set, fmt.Sprintf("%s:%d\nrow2", name, i))
		}
	}
	return frames
}

type rig struct {
	bunny  *BunnyState
	frames *BunnyFrames
	timers *BunnyTimers
	clock  *timer.Clock
}

func newRig(n int) *rig {
	bunny := CreateInitialBunnyState()
	frames := testFrames(n)
	clock := timer.NewClock()
	return &rig{
		bunny:  bunny,
		frames: frames,
		timers: CreateBunnyTimers(bunny, frames, clock, testTiming),
		clock:  clock,
	}
}

// advanceUntil steps the clock one millisecond at a time until the animation
// reaches kind, failing after limit.
func (r *rig) advanceUntil(t *testing.T, kind Kind, limit time.Duration) {
	t.Helper()
	for elapsed := time.Duration(0); elapsed < limit; elapsed += time.Millisecond {
		if r.bunny.Is(kind) {
			return
		}
		r.clock.Advance(time.Millisecond)
	}
	if !r.bunny.Is(kind) {
		t.Fatalf("animation did not reach %s within %v, still %s", kind, limit, r.bunny.Animation.Kind())
	}
}

// checkTimers verifies that exactly the timer of the current kind runs.
func (r *rig) checkTimers(t *testing.T) {
	t.Helper()
	running := 0
	for kind, tm := range r.timers.All() {
		if !tm.IsRunning() {
			continue
		}
		running++
		if kind != r.bunny.Animation.Kind() {
			t.Errorf("timer %s running while animation is %s", kind, r.bunny.Animation.Kind())
		}
	}
	if running != 1 {
		t.Errorf("expected exactly one running timer, got %d", running)
	}
	if r.bunny.Animation.Frame() < 0 {
		t.Errorf("negative frame index %d", r.bunny.Animation.Frame())
	}
}
