package input

import "github.com/wagner-austin/bunny/animation"

// Holder reports what an adapter currently holds down.
type Holder interface {
	HeldSide() Side
	HeldHop() animation.HopDirection
}

// walkingToward reports whether the actor is already walking, or about to,
// in the direction of side.
func walkingToward(b *animation.BunnyState, side Side) bool {
	if b.FacingRight != (side == SideRight) {
		return false
	}
	switch a := b.Animation.(type) {
	case *animation.Walk:
		return true
	case *animation.Transition:
		return a.Type == animation.IdleToWalk
	}
	return false
}

func walking(b *animation.BunnyState) bool {
	switch a := b.Animation.(type) {
	case *animation.Walk:
		return true
	case *animation.Transition:
		return a.Type == animation.IdleToWalk
	}
	return false
}

// busy reports whether the actor is airborne, hopping or turning into a hop.
func busy(b *animation.BunnyState) bool {
	switch a := b.Animation.(type) {
	case *animation.Jump, *animation.Hop:
		return true
	case *animation.Transition:
		return a.IsTurn()
	}
	return false
}

// driveWalk makes the walk animation match side without restarting a walk
// that already goes that way.
func driveWalk(b *animation.BunnyState, frames *animation.BunnyFrames, t *animation.BunnyTimers, side Side) {
	switch {
	case side == SideNone:
		if walking(b) {
			animation.HandleWalkKeyUp(b, t)
		}
	case walkingToward(b, side), busy(b):
	default:
		animation.HandleWalkKeyDown(b, frames, t, side == SideRight)
	}
}

// Reconcile brings the actor in line with what the holders keep pressed once
// it is free to act: a held hop is reissued, then a held walk direction, and
// a walk nobody holds is released. Holders earlier in the list win.
func Reconcile(b *animation.BunnyState, frames *animation.BunnyFrames, t *animation.BunnyTimers, holders ...Holder) {
	if !b.Is(animation.KindIdle) && !b.Is(animation.KindWalk) {
		return
	}

	for _, h := range holders {
		if hop := h.HeldHop(); hop != animation.HopNone {
			animation.HandleHopInput(b, t, hop)
			return
		}
	}

	driveWalk(b, frames, t, heldSide(holders...))
}

// heldSide returns the first walk direction any of holders keeps pressed.
func heldSide(holders ...Holder) Side {
	for _, h := range holders {
		if side := h.HeldSide(); side != SideNone {
			return side
		}
	}
	return SideNone
}
