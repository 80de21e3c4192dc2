// Package animation holds the actor's locomotion state machine: the animation
// state, the frame-advance rules run by its timers and the shared handlers
// every input adapter calls into.
package animation

// Kind identifies the active AnimationState variant.
type Kind string

const (
	KindIdle       Kind = "idle"
	KindWalk       Kind = "walk"
	KindJump       Kind = "jump"
	KindHop        Kind = "hop"
	KindTransition Kind = "transition"
)

// HopDirection is the depth axis of a hop.
type HopDirection string

const (
	HopNone   HopDirection = ""
	HopAway   HopDirection = "away"
	HopToward HopDirection = "toward"
)

// TransitionType names the bridge a Transition plays.
type TransitionType string

const (
	IdleToWalk       TransitionType = "idle_to_walk"
	WalkToIdle       TransitionType = "walk_to_idle"
	WalkToTurnAway   TransitionType = "walk_to_turn_away"
	WalkToTurnToward TransitionType = "walk_to_turn_toward"
)

// PendingAction is queued on a Transition and applied when it completes.
type PendingAction string

const (
	PendingNone      PendingAction = ""
	PendingWalk      PendingAction = "walk"
	PendingJump      PendingAction = "jump"
	PendingHopAway   PendingAction = "hop_away"
	PendingHopToward PendingAction = "hop_toward"
)

// AnimationState is one of *Idle, *Walk, *Jump, *Hop or *Transition.
type AnimationState interface {
	Kind() Kind
	Frame() int
	animationState()
}

// Idle is standing still.
type Idle struct {
	FrameIdx int
}

// Walk is horizontal locomotion.
type Walk struct {
	FrameIdx int
}

// Jump is the vertical arc. ReturnTo is KindIdle or KindWalk.
type Jump struct {
	FrameIdx int
	ReturnTo Kind
}

// Hop is depth-axis movement. ResumeFrame is the walk cursor restored when
// the hop resolves back to walk.
type Hop struct {
	Direction   HopDirection
	FrameIdx    int
	ReturnTo    Kind
	ResumeFrame int
}

// Transition is an interruptible bridge between stable states.
type Transition struct {
	Type          TransitionType
	FrameIdx      int
	PendingAction PendingAction
	ReturnTo      Kind
	ResumeFrame   int
}

func (*Idle) Kind() Kind       { return KindIdle }
func (*Walk) Kind() Kind       { return KindWalk }
func (*Jump) Kind() Kind       { return KindJump }
func (*Hop) Kind() Kind        { return KindHop }
func (*Transition) Kind() Kind { return KindTransition }

func (a *Idle) Frame() int       { return a.FrameIdx }
func (a *Walk) Frame() int       { return a.FrameIdx }
func (a *Jump) Frame() int       { return a.FrameIdx }
func (a *Hop) Frame() int        { return a.FrameIdx }
func (a *Transition) Frame() int { return a.FrameIdx }

func (*Idle) animationState()       {}
func (*Walk) animationState()       {}
func (*Jump) animationState()       {}
func (*Hop) animationState()        {}
func (*Transition) animationState() {}

// BunnyState is the actor's complete animation state. FacingRight is
// orthogonal to Animation and only picks the left or right frame set.
type BunnyState struct {
	FacingRight bool
	Animation   AnimationState
}

// CreateInitialBunnyState returns an actor standing still and facing right.
func CreateInitialBunnyState() *BunnyState {
	return &BunnyState{
		FacingRight: true,
		Animation:   &Idle{},
	}
}

// Is reports whether the active variant is kind.
func (b *BunnyState) Is(kind Kind) bool {
	return b.Animation != nil && b.Animation.Kind() == kind
}

// IsPendingJump reports whether a jump is queued on an in-flight transition.
func IsPendingJump(b *BunnyState) bool {
	t, ok := b.Animation.(*Transition)
	return ok && t.PendingAction == PendingJump
}

// IsTurn reports whether t leads into a hop.
func (t *Transition) IsTurn() bool {
	return t.Type == WalkToTurnAway || t.Type == WalkToTurnToward
}

func turnFor(direction HopDirection) TransitionType {
	if direction == HopToward {
		return WalkToTurnToward
	}
	return WalkToTurnAway
}

func (t TransitionType) hopDirection() HopDirection {
	switch t {
	case WalkToTurnAway:
		return HopAway
	case WalkToTurnToward:
		return HopToward
	}
	return HopNone
}

func pendingHop(direction HopDirection) PendingAction {
	if direction == HopToward {
		return PendingHopToward
	}
	return PendingHopAway
}

func (p PendingAction) hopDirection() HopDirection {
	switch p {
	case PendingHopAway:
		return HopAway
	case PendingHopToward:
		return HopToward
	}
	return HopNone
}
