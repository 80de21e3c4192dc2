package input

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny/animation"
)

// TouchConfig tunes the virtual joystick.
type TouchConfig struct {
	// Deadzone is the drag distance in pixels below which no direction is
	// reported.
	Deadzone float64
	// TapThreshold is the longest touch still counted as a tap.
	TapThreshold time.Duration
	// TapMaxDistance is the largest displacement still counted as a tap.
	TapMaxDistance float64
}

// DefaultTouchConfig returns the stock joystick tuning.
func DefaultTouchConfig() TouchConfig {
	return TouchConfig{
		Deadzone:       20,
		TapThreshold:   200 * time.Millisecond,
		TapMaxDistance: 15,
	}
}

// Touch is one contact point in client pixels.
type Touch struct {
	Identifier int
	X, Y       float64
}

// JoystickState is the virtual joystick anchored at the first contact.
type JoystickState struct {
	AnchorX, AnchorY   float64
	CurrentX, CurrentY float64
	StartTime          time.Time
	Identifier         int
}

// Displacement returns the drag vector from the anchor.
func (js *JoystickState) Displacement() (dx, dy float64) {
	return js.CurrentX - js.AnchorX, js.CurrentY - js.AnchorY
}

// TouchState is everything the touch adapter tracks between events.
type TouchState struct {
	Joystick         *JoystickState
	CurrentDirection TouchDirection

	// HopKeyHeld is the hop the joystick holds, like a held up/down key.
	HopKeyHeld animation.HopDirection
	// WalkKeyHeld is the walk direction the joystick holds.
	WalkKeyHeld Side
	// SlideKeyHeld is the horizontal lean shown while hopping.
	SlideKeyHeld Side
}

// IsTap reports whether the gesture tracked by js, ending at now, was short
// and still enough to be a tap.
func IsTap(js *JoystickState, now time.Time, cfg TouchConfig) bool {
	if js == nil {
		return false
	}
	dx, dy := js.Displacement()
	return now.Sub(js.StartTime) < cfg.TapThreshold && math.Hypot(dx, dy) < cfg.TapMaxDistance
}

// TouchAdapter turns a single-pointer drag into the same handler calls the
// keyboard makes: the vertical component of the joystick holds a hop, the
// horizontal component holds a walk and a tap jumps.
type TouchAdapter struct {
	State TouchState

	// Peers are the other adapters driving the same actor. What they hold
	// is honoured when the joystick lets go.
	Peers []Holder

	cfg    TouchConfig
	bunny  *animation.BunnyState
	frames *animation.BunnyFrames
	timers *animation.BunnyTimers
}

// NewTouchAdapter creates new TouchAdapter
func NewTouchAdapter(bunny *animation.BunnyState, frames *animation.BunnyFrames, timers *animation.BunnyTimers, cfg TouchConfig) *TouchAdapter {
	return &TouchAdapter{
		cfg:    cfg,
		bunny:  bunny,
		frames: frames,
		timers: timers,
	}
}

// HeldSide implements Holder.
func (ta *TouchAdapter) HeldSide() Side {
	return ta.State.WalkKeyHeld
}

// HeldHop implements Holder.
func (ta *TouchAdapter) HeldHop() animation.HopDirection {
	return ta.State.HopKeyHeld
}

// TouchStart anchors the joystick at the first new contact. Further contacts
// are ignored while a joystick exists.
func (ta *TouchAdapter) TouchStart(changed []Touch, now time.Time) {
	if ta.State.Joystick != nil || len(changed) == 0 {
		return
	}

	first := changed[0]
	ta.State.Joystick = &JoystickState{
		AnchorX:    first.X,
		AnchorY:    first.Y,
		CurrentX:   first.X,
		CurrentY:   first.Y,
		StartTime:  now,
		Identifier: first.Identifier,
	}
	logrus.Tracef("joystick anchored at %.0f,%.0f (touch %d)", first.X, first.Y, first.Identifier)
}

// TouchMove follows the tracked contact and reacts to direction changes.
func (ta *TouchAdapter) TouchMove(touches []Touch, now time.Time) {
	js := ta.State.Joystick
	if js == nil {
		return
	}

	tracked, ok := find(touches, js.Identifier)
	if !ok {
		return
	}

	js.CurrentX, js.CurrentY = tracked.X, tracked.Y
	dx, dy := js.Displacement()
	next := CalculateDirection(dx, dy, ta.cfg.Deadzone)
	if next == ta.State.CurrentDirection {
		return
	}

	prev := ta.State.CurrentDirection
	ta.State.CurrentDirection = next
	ta.ProcessDirectionChange(prev, next)
}

// TouchEnd finalizes the gesture once the tracked contact is no longer among
// remaining. A tap jumps; anything else lets go of what the drag held.
func (ta *TouchAdapter) TouchEnd(remaining []Touch, now time.Time) {
	js := ta.State.Joystick
	if js == nil {
		return
	}
	if _, ok := find(remaining, js.Identifier); ok {
		return
	}

	b := ta.bunny
	if IsTap(js, now, ta.cfg) &&
		!b.Is(animation.KindJump) && !b.Is(animation.KindHop) && !animation.IsPendingJump(b) {
		logrus.Trace("tap")
		animation.HandleJumpInput(b, ta.frames, ta.timers)
	}

	hopHeld := ta.State.HopKeyHeld != animation.HopNone
	walkHeld := ta.State.WalkKeyHeld != SideNone
	ta.State = TouchState{}

	switch {
	case hopHeld:
		animation.HandleHopRelease(b, ta.timers)
		Reconcile(b, ta.frames, ta.timers, ta.Peers...)
	case walkHeld:
		driveWalk(b, ta.frames, ta.timers, heldSide(ta.Peers...))
	}
}

// TouchCancel is handled like TouchEnd.
func (ta *TouchAdapter) TouchCancel(remaining []Touch, now time.Time) {
	ta.TouchEnd(remaining, now)
}

// ProcessDirectionChange applies the difference between two joystick
// directions. The vertical component is handled first, as a hop key press or
// release. While a hop is held the horizontal component only leans; otherwise
// it drives walking, and a walk that already goes the held way is left alone
// so the walk cycle does not restart.
func (ta *TouchAdapter) ProcessDirectionChange(prev, next TouchDirection) {
	b := ta.bunny
	logrus.Tracef("joystick %q -> %q", prev, next)

	hop := next.Hop()
	released := false
	if hop != ta.State.HopKeyHeld {
		if ta.State.HopKeyHeld != animation.HopNone {
			animation.HandleHopRelease(b, ta.timers)
			ta.State.HopKeyHeld = animation.HopNone
			released = hop == animation.HopNone
		}
		if hop != animation.HopNone {
			animation.HandleHopInput(b, ta.timers, hop)
			ta.State.HopKeyHeld = hop
		}
	}

	side := next.Side()
	if ta.State.HopKeyHeld != animation.HopNone {
		ta.State.SlideKeyHeld = side
		return
	}
	ta.State.SlideKeyHeld = SideNone

	held := ta.State.WalkKeyHeld
	ta.State.WalkKeyHeld = side
	switch {
	case released:
		Reconcile(b, ta.frames, ta.timers, ta.holders()...)
	case side == SideNone:
		if held != SideNone {
			driveWalk(b, ta.frames, ta.timers, heldSide(ta.Peers...))
		}
	default:
		driveWalk(b, ta.frames, ta.timers, side)
	}
}

func (ta *TouchAdapter) holders() []Holder {
	return append([]Holder{ta}, ta.Peers...)
}

func find(touches []Touch, identifier int) (Touch, bool) {
	for _, t := range touches {
		if t.Identifier == identifier {
			return t, true
		}
	}
	return Touch{}, false
}
