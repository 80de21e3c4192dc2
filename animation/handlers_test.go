package animation

import (
	"math/rand"
	"testing"
	"time"
)

func TestWalkRoundTrip(t *testing.T) {
	r := newRig(4)

	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	tr, ok := r.bunny.Animation.(*Transition)
	if !ok {
		t.Fatalf("expected transition, got %s", r.bunny.Animation.Kind())
	}
	if tr.Type != IdleToWalk || tr.FrameIdx != 3 || tr.PendingAction != PendingWalk {
		t.Errorf("unexpected transition %+v", *tr)
	}
	if !r.bunny.FacingRight {
		t.Error("expected facing right")
	}
	r.checkTimers(t)

	r.advanceUntil(t, KindWalk, time.Second)
	if walk := r.bunny.Animation.(*Walk); walk.FrameIdx != 0 {
		t.Errorf("expected walk at frame 0, got %d", walk.FrameIdx)
	}
	r.checkTimers(t)

	HandleWalkKeyUp(r.bunny, r.timers)
	tr, ok = r.bunny.Animation.(*Transition)
	if !ok || tr.Type != WalkToIdle || tr.FrameIdx != 0 || tr.ReturnTo != KindIdle || tr.PendingAction != PendingNone {
		t.Fatalf("unexpected state after key up: %+v", r.bunny.Animation)
	}

	r.advanceUntil(t, KindIdle, time.Second)
	if idle := r.bunny.Animation.(*Idle); idle.FrameIdx != 0 {
		t.Errorf("expected idle at frame 0, got %d", idle.FrameIdx)
	}
	r.checkTimers(t)
}

func TestWalkKeyDownIsIdempotentWhileWalking(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	r.advanceUntil(t, KindWalk, time.Second)
	r.clock.Advance(2 * testTiming.Walk)

	walk := r.bunny.Animation.(*Walk)
	if walk.FrameIdx != 2 {
		t.Fatalf("expected walk cycle at frame 2, got %d", walk.FrameIdx)
	}

	for i := 0; i < 2; i++ {
		HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
		if r.bunny.Animation != walk || walk.FrameIdx != 0 {
			t.Errorf("call %d: expected the same walk reset to frame 0, got %+v", i, r.bunny.Animation)
		}
		r.checkTimers(t)
	}
}

func TestWalkKeyDownReversesDirection(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	r.advanceUntil(t, KindWalk, time.Second)
	r.clock.Advance(testTiming.Walk)

	HandleWalkKeyDown(r.bunny, r.frames, r.timers, false)
	if r.bunny.FacingRight {
		t.Error("expected facing left")
	}
	if walk := r.bunny.Animation.(*Walk); walk.FrameIdx != 0 {
		t.Errorf("expected frame reset, got %d", walk.FrameIdx)
	}
	if !r.timers.Walk.IsRunning() {
		t.Error("walk timer should keep running")
	}
	r.checkTimers(t)
}

func TestWalkKeyDownInterruptsTransition(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, false)

	walk, ok := r.bunny.Animation.(*Walk)
	if !ok || walk.FrameIdx != 0 {
		t.Fatalf("expected walk at frame 0, got %+v", r.bunny.Animation)
	}
	if r.bunny.FacingRight {
		t.Error("expected facing left")
	}
	r.checkTimers(t)
}

func TestWalkKeyUpCancelsIdleToWalk(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	HandleWalkKeyUp(r.bunny, r.timers)

	if idle, ok := r.bunny.Animation.(*Idle); !ok || idle.FrameIdx != 0 {
		t.Fatalf("expected idle at frame 0, got %+v", r.bunny.Animation)
	}
	r.checkTimers(t)
}

func TestWalkRequestsDroppedMidAir(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	r.advanceUntil(t, KindWalk, time.Second)
	HandleJumpInput(r.bunny, r.frames, r.timers)

	jump := r.bunny.Animation.(*Jump)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, false)
	HandleWalkKeyUp(r.bunny, r.timers)
	if r.bunny.Animation != jump || !r.bunny.FacingRight {
		t.Errorf("walk input should be ignored while jumping, got %+v", r.bunny.Animation)
	}
	r.checkTimers(t)
}

func TestJumpInterruptsTransition(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	HandleJumpInput(r.bunny, r.frames, r.timers)

	jump, ok := r.bunny.Animation.(*Jump)
	if !ok {
		t.Fatalf("expected jump, got %s", r.bunny.Animation.Kind())
	}
	if jump.FrameIdx != 0 || jump.ReturnTo != KindIdle {
		t.Errorf("unexpected jump %+v", *jump)
	}
	if r.timers.Transition.IsRunning() {
		t.Error("transition timer still running")
	}
	r.checkTimers(t)
}

func TestJumpFromRestLeansInThenLands(t *testing.T) {
	r := newRig(4)
	var settled []Kind
	r.timers.OnSettle = func(kind Kind) { settled = append(settled, kind) }

	HandleJumpInput(r.bunny, r.frames, r.timers)
	if !IsPendingJump(r.bunny) {
		t.Fatalf("expected a queued jump, got %+v", r.bunny.Animation)
	}
	HandleJumpInput(r.bunny, r.frames, r.timers)
	if !r.bunny.Is(KindJump) {
		t.Fatalf("second jump request interrupts the lean-in, got %s", r.bunny.Animation.Kind())
	}

	r = newRig(4)
	r.timers.OnSettle = func(kind Kind) { settled = append(settled, kind) }
	HandleJumpInput(r.bunny, r.frames, r.timers)
	r.advanceUntil(t, KindJump, time.Second)
	if jump := r.bunny.Animation.(*Jump); jump.ReturnTo != KindIdle {
		t.Errorf("expected return to idle, got %s", jump.ReturnTo)
	}
	if len(settled) != 0 {
		t.Errorf("launching is not settling, got %v", settled)
	}

	r.advanceUntil(t, KindIdle, time.Second)
	r.checkTimers(t)
	if len(settled) != 1 || settled[0] != KindIdle {
		t.Errorf("expected one settle into idle, got %v", settled)
	}
}

func TestJumpFromWalkReturnsToWalk(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, false)
	r.advanceUntil(t, KindWalk, time.Second)
	HandleJumpInput(r.bunny, r.frames, r.timers)

	jump := r.bunny.Animation.(*Jump)
	if jump.ReturnTo != KindWalk {
		t.Fatalf("expected return to walk, got %s", jump.ReturnTo)
	}

	r.clock.Advance(testTiming.Jump * 3)
	if jump.FrameIdx != 3 {
		t.Errorf("expected last jump frame, got %d", jump.FrameIdx)
	}
	r.clock.Advance(testTiming.Jump)
	walk, ok := r.bunny.Animation.(*Walk)
	if !ok || walk.FrameIdx != 0 {
		t.Fatalf("expected walk at frame 0 after landing, got %+v", r.bunny.Animation)
	}
	if r.bunny.FacingRight {
		t.Error("landing should keep facing")
	}
	r.checkTimers(t)
}

func TestNoDoubleJump(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	r.advanceUntil(t, KindWalk, time.Second)
	HandleJumpInput(r.bunny, r.frames, r.timers)
	r.clock.Advance(testTiming.Jump)

	jump := r.bunny.Animation.(*Jump)
	HandleJumpInput(r.bunny, r.frames, r.timers)
	HandleHopInput(r.bunny, r.timers, HopAway)
	if r.bunny.Animation != jump || jump.FrameIdx != 1 {
		t.Errorf("expected jump untouched, got %+v", r.bunny.Animation)
	}
	r.checkTimers(t)
}

func TestHopFromWalkResumesWalkCycle(t *testing.T) {
	r := newRig(8)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	r.advanceUntil(t, KindWalk, time.Second)
	r.clock.Advance(5 * testTiming.Walk)

	HandleHopInput(r.bunny, r.timers, HopAway)
	tr := r.bunny.Animation.(*Transition)
	if tr.Type != WalkToTurnAway || tr.FrameIdx != 0 || tr.ReturnTo != KindWalk || tr.PendingAction != PendingNone {
		t.Errorf("unexpected turn %+v", *tr)
	}
	r.checkTimers(t)

	r.advanceUntil(t, KindHop, time.Second)
	hop := r.bunny.Animation.(*Hop)
	if hop.Direction != HopAway || hop.ReturnTo != KindWalk || hop.ResumeFrame != 5 {
		t.Errorf("unexpected hop %+v", *hop)
	}
	r.clock.Advance(3 * testTiming.Hop)
	r.checkTimers(t)

	HandleHopRelease(r.bunny, r.timers)
	walk, ok := r.bunny.Animation.(*Walk)
	if !ok || walk.FrameIdx != 5 {
		t.Fatalf("expected walk resumed at frame 5, got %+v", r.bunny.Animation)
	}
	r.checkTimers(t)
}

func TestHopReleaseAbortsTurn(t *testing.T) {
	r := newRig(4)
	HandleHopInput(r.bunny, r.timers, HopToward)
	if tr := r.bunny.Animation.(*Transition); tr.Type != WalkToTurnToward || tr.ReturnTo != KindIdle {
		t.Fatalf("unexpected turn %+v", *tr)
	}

	HandleHopRelease(r.bunny, r.timers)
	if !r.bunny.Is(KindIdle) {
		t.Fatalf("expected idle, got %s", r.bunny.Animation.Kind())
	}
	r.checkTimers(t)
}

func TestHopQueuedOnTransitionLastRequestWins(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	HandleHopInput(r.bunny, r.timers, HopToward)
	HandleHopInput(r.bunny, r.timers, HopAway)

	tr := r.bunny.Animation.(*Transition)
	if tr.Type != IdleToWalk || tr.PendingAction != PendingHopAway {
		t.Fatalf("expected pending hop_away on idle_to_walk, got %+v", *tr)
	}

	r.advanceUntil(t, KindHop, time.Second)
	hop := r.bunny.Animation.(*Hop)
	if hop.Direction != HopAway || hop.ReturnTo != KindIdle {
		t.Errorf("unexpected hop %+v", *hop)
	}
	r.checkTimers(t)
}

func TestHopPendingOverridesTurnDirection(t *testing.T) {
	r := newRig(4)
	HandleHopInput(r.bunny, r.timers, HopAway)
	HandleHopInput(r.bunny, r.timers, HopToward)

	r.advanceUntil(t, KindHop, time.Second)
	if hop := r.bunny.Animation.(*Hop); hop.Direction != HopToward {
		t.Errorf("expected the later request to win, got %s", hop.Direction)
	}
}

func TestHopReleaseClearsQueuedHop(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	HandleHopInput(r.bunny, r.timers, HopAway)
	HandleHopRelease(r.bunny, r.timers)

	tr := r.bunny.Animation.(*Transition)
	if tr.Type != IdleToWalk || tr.PendingAction != PendingNone {
		t.Fatalf("expected idle_to_walk with nothing pending, got %+v", *tr)
	}

	r.advanceUntil(t, KindWalk, time.Second)
	r.checkTimers(t)
}

func TestHopReleaseClearsHopQueuedOnWalkToIdle(t *testing.T) {
	r := newRig(4)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	r.advanceUntil(t, KindWalk, time.Second)
	HandleWalkKeyUp(r.bunny, r.timers)
	HandleHopInput(r.bunny, r.timers, HopToward)
	HandleHopRelease(r.bunny, r.timers)

	tr := r.bunny.Animation.(*Transition)
	if tr.Type != WalkToIdle || tr.PendingAction != PendingNone {
		t.Fatalf("expected walk_to_idle with nothing pending, got %+v", *tr)
	}

	for i := 0; i < 1000 && !r.bunny.Is(KindIdle); i++ {
		r.clock.Advance(time.Millisecond)
		if tr, ok := r.bunny.Animation.(*Transition); r.bunny.Is(KindHop) || ok && tr.IsTurn() {
			t.Fatalf("released hop started anyway: %+v", r.bunny.Animation)
		}
	}
	if !r.bunny.Is(KindIdle) {
		t.Fatalf("expected idle, got %s", r.bunny.Animation.Kind())
	}
	r.checkTimers(t)
}

func TestHopReleaseIgnoredElsewhere(t *testing.T) {
	r := newRig(4)
	HandleHopRelease(r.bunny, r.timers)
	if !r.bunny.Is(KindIdle) {
		t.Errorf("expected idle, got %s", r.bunny.Animation.Kind())
	}

	HandleJumpInput(r.bunny, r.frames, r.timers)
	HandleHopRelease(r.bunny, r.timers)
	if !IsPendingJump(r.bunny) {
		t.Error("releasing a hop must not clear a queued jump")
	}
	r.checkTimers(t)
}

func TestEmptyFrameSetsStillProgress(t *testing.T) {
	r := newRig(0)
	HandleWalkKeyDown(r.bunny, r.frames, r.timers, true)
	if tr := r.bunny.Animation.(*Transition); tr.FrameIdx != 0 {
		t.Errorf("expected frame 0 with no frames, got %d", tr.FrameIdx)
	}

	r.clock.Advance(testTiming.Transition)
	if !r.bunny.Is(KindWalk) {
		t.Fatalf("expected walk, got %s", r.bunny.Animation.Kind())
	}
	r.clock.Advance(testTiming.Walk * 3)
	if got := GetBunnyFrame(r.bunny, r.frames); len(got.Lines) != 0 || got.FrameIdx != 0 {
		t.Errorf("expected empty render, got %+v", got)
	}
	r.checkTimers(t)
}

func TestRejectedKindChangeKeepsSingleTimer(t *testing.T) {
	r := newRig(4)
	r.timers.enter(r.bunny, &Hop{Direction: HopAway, ReturnTo: KindIdle}, "test")

	if !r.timers.Hop.IsRunning() {
		t.Error("hop timer should run after a forced change")
	}
	r.checkTimers(t)

	HandleHopRelease(r.bunny, r.timers)
	if !r.bunny.Is(KindIdle) {
		t.Errorf("expected idle, got %s", r.bunny.Animation.Kind())
	}
	r.checkTimers(t)
}

func TestAtMostOneTimerUnderRandomInput(t *testing.T) {
	r := newRig(5)
	rnd := rand.New(rand.NewSource(7))
	directions := []HopDirection{HopAway, HopToward}

	for i := 0; i < 5000; i++ {
		switch rnd.Intn(7) {
		case 0:
			HandleWalkKeyDown(r.bunny, r.frames, r.timers, rnd.Intn(2) == 0)
		case 1:
			HandleWalkKeyUp(r.bunny, r.timers)
		case 2:
			HandleJumpInput(r.bunny, r.frames, r.timers)
		case 3:
			HandleHopInput(r.bunny, r.timers, directions[rnd.Intn(2)])
		case 4:
			HandleHopRelease(r.bunny, r.timers)
		default:
			r.clock.Advance(time.Duration(rnd.Intn(200)) * time.Millisecond)
		}
		r.checkTimers(t)
		if t.Failed() {
			t.Fatalf("invariant broken at step %d in %+v", i, r.bunny.Animation)
		}
	}
}
