package input

import (
	"fmt"
	"testing"
	"time"

	"github.com/wagner-austin/bunny/animation"
	"github.com/wagner-austin/bunny/timer"
)

var testTiming = animation.Timing{
	Idle:       100 * time.Millisecond,
	Walk:       50 * time.Millisecond,
	Jump:       40 * time.Millisecond,
	Transition: 30 * time.Millisecond,
	Hop:        60 * time.Millisecond,
}

type rig struct {
	bunny  *animation.BunnyState
	frames *animation.BunnyFrames
	timers *animation.BunnyTimers
	clock  *timer.Clock
}

func newRig() *rig {
	frames := &animation.BunnyFrames{}
	for name, set := range frames.Named() {
		for i := 0; i < 8; i++ {
			*set = append(*set, fmt.Sprintf("%s:%d", name, i))
		}
	}

	bunny := animation.CreateInitialBunnyState()
	clock := timer.NewClock()
	return &rig{
		bunny:  bunny,
		frames: frames,
		timers: animation.CreateBunnyTimers(bunny, frames, clock, testTiming),
		clock:  clock,
	}
}

func (r *rig) advanceUntil(t *testing.T, kind animation.Kind) {
	t.Helper()
	for i := 0; i < 2000 && !r.bunny.Is(kind); i++ {
		r.clock.Advance(time.Millisecond)
	}
	if !r.bunny.Is(kind) {
		t.Fatalf("animation did not reach %s, still %s", kind, r.bunny.Animation.Kind())
	}
}

func (r *rig) walkFrame(t *testing.T) int {
	t.Helper()
	walk, ok := r.bunny.Animation.(*animation.Walk)
	if !ok {
		t.Fatalf("expected walk, got %s", r.bunny.Animation.Kind())
	}
	return walk.FrameIdx
}

type fakeHolder struct {
	side Side
	hop  animation.HopDirection
}

func (f fakeHolder) HeldSide() Side                  { return f.side }
func (f fakeHolder) HeldHop() animation.HopDirection { return f.hop }
