package animation

import "strings"

// BunnyFrames holds every frame set the actor can display. Each frame is a
// multi-line string; sets are indexed by animation kind, facing and frameIdx.
type BunnyFrames struct {
	WalkLeft              []string
	WalkRight             []string
	JumpLeft              []string
	JumpRight             []string
	IdleLeft              []string
	IdleRight             []string
	WalkToIdleLeft        []string
	WalkToIdleRight       []string
	WalkToTurnAwayLeft    []string
	WalkToTurnAwayRight   []string
	WalkToTurnTowardLeft  []string
	WalkToTurnTowardRight []string
	HopAway               []string
	HopToward             []string
}

// Named maps the canonical set names ("walkLeft", "hopAway", ...) to the
// corresponding fields, for loaders.
func (f *BunnyFrames) Named() map[string]*[]string {
	return map[string]*[]string{
		"walkLeft":              &f.WalkLeft,
		"walkRight":             &f.WalkRight,
		"jumpLeft":              &f.JumpLeft,
		"jumpRight":             &f.JumpRight,
		"idleLeft":              &f.IdleLeft,
		"idleRight":             &f.IdleRight,
		"walkToIdleLeft":        &f.WalkToIdleLeft,
		"walkToIdleRight":       &f.WalkToIdleRight,
		"walkToTurnAwayLeft":    &f.WalkToTurnAwayLeft,
		"walkToTurnAwayRight":   &f.WalkToTurnAwayRight,
		"walkToTurnTowardLeft":  &f.WalkToTurnTowardLeft,
		"walkToTurnTowardRight": &f.WalkToTurnTowardRight,
		"hopAway":               &f.HopAway,
		"hopToward":             &f.HopToward,
	}
}

func pick(right bool, left, rightSet []string) []string {
	if right {
		return rightSet
	}
	return left
}

func (f *BunnyFrames) idle(right bool) []string {
	if f == nil {
		return nil
	}
	return pick(right, f.IdleLeft, f.IdleRight)
}

func (f *BunnyFrames) walk(right bool) []string {
	if f == nil {
		return nil
	}
	return pick(right, f.WalkLeft, f.WalkRight)
}

func (f *BunnyFrames) jump(right bool) []string {
	if f == nil {
		return nil
	}
	return pick(right, f.JumpLeft, f.JumpRight)
}

func (f *BunnyFrames) hop(direction HopDirection) []string {
	if f == nil {
		return nil
	}
	if direction == HopToward {
		return f.HopToward
	}
	return f.HopAway
}

func (f *BunnyFrames) transition(t TransitionType, right bool) []string {
	if f == nil {
		return nil
	}
	switch t {
	case IdleToWalk, WalkToIdle:
		return pick(right, f.WalkToIdleLeft, f.WalkToIdleRight)
	case WalkToTurnAway:
		return pick(right, f.WalkToTurnAwayLeft, f.WalkToTurnAwayRight)
	case WalkToTurnToward:
		return pick(right, f.WalkToTurnTowardLeft, f.WalkToTurnTowardRight)
	}
	return nil
}

// setFor returns the frame set the current animation indexes into.
func (f *BunnyFrames) setFor(b *BunnyState) []string {
	switch a := b.Animation.(type) {
	case *Idle:
		return f.idle(b.FacingRight)
	case *Walk:
		return f.walk(b.FacingRight)
	case *Jump:
		return f.jump(b.FacingRight)
	case *Hop:
		return f.hop(a.Direction)
	case *Transition:
		return f.transition(a.Type, b.FacingRight)
	}
	return nil
}

func lastIndex(set []string) int {
	if len(set) == 0 {
		return 0
	}
	return len(set) - 1
}

// FrameResult is what a renderer draws: the selected frame split into rows.
type FrameResult struct {
	Lines    []string
	FrameIdx int
}

// GetBunnyFrame selects the frame for the current state. A missing set, an
// unknown animation or an out-of-range index yields empty Lines.
func GetBunnyFrame(b *BunnyState, frames *BunnyFrames) FrameResult {
	if b == nil || b.Animation == nil {
		return FrameResult{Lines: []string{}}
	}

	idx := b.Animation.Frame()
	set := frames.setFor(b)
	if idx < 0 || idx >= len(set) {
		return FrameResult{Lines: []string{}, FrameIdx: idx}
	}

	return FrameResult{
		Lines:    strings.Split(set[idx], "\n"),
		FrameIdx: idx,
	}
}
