package animation

// The handlers below are the only code that changes an actor's animation in
// response to input. Each one mutates b in place, never fails, and stops the
// previous timer in the same call that starts the next. A request that does
// not apply to the current state is dropped.

// HandleWalkKeyDown starts, redirects or restarts walking.
func HandleWalkKeyDown(b *BunnyState, frames *BunnyFrames, t *BunnyTimers, goingRight bool) {
	switch a := b.Animation.(type) {
	case *Idle:
		b.FacingRight = goingRight
		t.enter(b, &Transition{
			Type:          IdleToWalk,
			FrameIdx:      lastIndex(frames.transition(IdleToWalk, goingRight)),
			PendingAction: PendingWalk,
			ReturnTo:      KindIdle,
		}, "walk_key_down")
	case *Transition:
		b.FacingRight = goingRight
		t.enter(b, &Walk{}, "walk_key_down")
	case *Walk:
		b.FacingRight = goingRight
		a.FrameIdx = 0
	}
}

// HandleWalkKeyUp eases out of walking, or cancels a walk that has not
// started yet.
func HandleWalkKeyUp(b *BunnyState, t *BunnyTimers) {
	switch a := b.Animation.(type) {
	case *Walk:
		t.enter(b, &Transition{
			Type:     WalkToIdle,
			ReturnTo: KindIdle,
		}, "walk_key_up")
	case *Transition:
		if a.Type == IdleToWalk {
			t.enter(b, &Idle{}, "walk_key_up")
		}
	}
}

// HandleJumpInput launches a jump. From rest the jump is queued behind a
// short lean-in transition.
func HandleJumpInput(b *BunnyState, frames *BunnyFrames, t *BunnyTimers) {
	switch a := b.Animation.(type) {
	case *Idle:
		t.enter(b, &Transition{
			Type:          IdleToWalk,
			FrameIdx:      lastIndex(frames.transition(IdleToWalk, b.FacingRight)),
			PendingAction: PendingJump,
			ReturnTo:      KindIdle,
		}, "jump")
	case *Walk:
		t.enter(b, &Jump{ReturnTo: KindWalk}, "jump")
	case *Transition:
		t.enter(b, &Jump{ReturnTo: a.ReturnTo}, "jump")
	}
}

// HandleHopInput turns toward the requested depth direction and hops once
// the turn completes. An in-flight transition is not interrupted; the hop is
// queued on it instead, replacing any earlier request.
func HandleHopInput(b *BunnyState, t *BunnyTimers, direction HopDirection) {
	switch a := b.Animation.(type) {
	case *Idle:
		t.enter(b, &Transition{
			Type:     turnFor(direction),
			ReturnTo: KindIdle,
		}, "hop")
	case *Walk:
		t.enter(b, &Transition{
			Type:        turnFor(direction),
			ReturnTo:    KindWalk,
			ResumeFrame: a.FrameIdx,
		}, "hop")
	case *Transition:
		a.PendingAction = pendingHop(direction)
	}
}

// HandleHopRelease ends a hop, aborts the turn leading into one, or drops a
// hop still queued on a transition.
func HandleHopRelease(b *BunnyState, t *BunnyTimers) {
	switch a := b.Animation.(type) {
	case *Hop:
		t.resolve(b, a.ReturnTo, a.ResumeFrame, "hop_release")
	case *Transition:
		switch {
		case a.IsTurn():
			t.resolve(b, a.ReturnTo, a.ResumeFrame, "hop_release")
		case a.PendingAction.hopDirection() != HopNone:
			a.PendingAction = PendingNone
		}
	}
}
