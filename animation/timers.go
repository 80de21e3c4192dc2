package animation

import (
	"time"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny/timer"
)

// Timing holds the tick period of each timer.
type Timing struct {
	Idle       time.Duration
	Walk       time.Duration
	Jump       time.Duration
	Transition time.Duration
	Hop        time.Duration
}

// DefaultTiming returns the stock frame periods.
func DefaultTiming() Timing {
	return Timing{
		Idle:       400 * time.Millisecond,
		Walk:       90 * time.Millisecond,
		Jump:       70 * time.Millisecond,
		Transition: 60 * time.Millisecond,
		Hop:        90 * time.Millisecond,
	}
}

// kindEvents is the table of legal kind changes. Entering a kind starts its
// timer and leaving one stops it, so exactly one timer runs at a time.
var kindEvents = []fsm.EventDesc{
	{Name: "to_idle", Src: []string{"transition", "jump", "hop"}, Dst: "idle"},
	{Name: "to_walk", Src: []string{"transition", "jump", "hop"}, Dst: "walk"},
	{Name: "to_jump", Src: []string{"walk", "transition"}, Dst: "jump"},
	{Name: "to_hop", Src: []string{"transition"}, Dst: "hop"},
	{Name: "to_transition", Src: []string{"idle", "walk"}, Dst: "transition"},
}

// BunnyTimers owns the five timers of one actor.
type BunnyTimers struct {
	Walk       timer.Timer
	Idle       timer.Timer
	Jump       timer.Timer
	Transition timer.Timer
	Hop        timer.Timer

	// OnSettle is called after a timer callback resolves the actor into
	// idle or walk on its own (a landing or a finished transition).
	OnSettle func(kind Kind)

	// Log receives kind changes; it defaults to the standard logger.
	Log *logrus.Entry

	bunny  *BunnyState
	frames *BunnyFrames
	kinds  *fsm.FSM
}

// CreateBunnyTimers creates the timers for bunny and starts the one matching
// its current animation. frames is read on every tick, so replacing *frames
// takes effect immediately.
func CreateBunnyTimers(bunny *BunnyState, frames *BunnyFrames, factory timer.Factory, timing Timing) *BunnyTimers {
	t := &BunnyTimers{
		Log:    logrus.NewEntry(logrus.StandardLogger()),
		bunny:  bunny,
		frames: frames,
	}

	t.Walk = factory.NewTimer(string(KindWalk), timing.Walk, t.tickWalk)
	t.Idle = factory.NewTimer(string(KindIdle), timing.Idle, t.tickIdle)
	t.Jump = factory.NewTimer(string(KindJump), timing.Jump, t.tickJump)
	t.Transition = factory.NewTimer(string(KindTransition), timing.Transition, t.tickTransition)
	t.Hop = factory.NewTimer(string(KindHop), timing.Hop, t.tickHop)

	t.kinds = fsm.NewFSM(
		string(bunny.Animation.Kind()),
		kindEvents,
		fsm.Callbacks{
			"leave_state": func(e *fsm.Event) {
				t.timerFor(Kind(e.Src)).Stop()
			},
			"enter_state": func(e *fsm.Event) {
				t.timerFor(Kind(e.Dst)).Start()
			},
		},
	)

	t.timerFor(bunny.Animation.Kind()).Start()
	return t
}

// All returns the five timers keyed by the kind they drive.
func (t *BunnyTimers) All() map[Kind]timer.Timer {
	return map[Kind]timer.Timer{
		KindWalk:       t.Walk,
		KindIdle:       t.Idle,
		KindJump:       t.Jump,
		KindTransition: t.Transition,
		KindHop:        t.Hop,
	}
}

// StopAll stops every timer. Used when the actor is removed.
func (t *BunnyTimers) StopAll() {
	for _, tm := range t.All() {
		tm.Stop()
	}
}

func (t *BunnyTimers) timerFor(kind Kind) timer.Timer {
	switch kind {
	case KindWalk:
		return t.Walk
	case KindJump:
		return t.Jump
	case KindTransition:
		return t.Transition
	case KindHop:
		return t.Hop
	}
	return t.Idle
}

// enter replaces the animation of b and hands control to the timer of the
// new kind. Changes within one kind keep the running timer.
func (t *BunnyTimers) enter(b *BunnyState, next AnimationState, cause string) {
	prev := b.Animation.Kind()
	b.Animation = next
	if prev == next.Kind() {
		return
	}

	t.Log.WithFields(logrus.Fields{
		"from":  prev,
		"to":    next.Kind(),
		"cause": cause,
	}).Debug("animation changed")

	if err := t.kinds.Event("to_" + string(next.Kind())); err != nil {
		t.Log.WithError(err).Errorf("kind change %s -> %s is not in the transition table", prev, next.Kind())
		t.force(next.Kind())
	}
}

// force re-establishes the single-timer invariant after a rejected change.
func (t *BunnyTimers) force(kind Kind) {
	t.StopAll()
	t.kinds.SetState(string(kind))
	t.timerFor(kind).Start()
}

// resolve settles b into idle or walk. Walk resumes at frame resume.
func (t *BunnyTimers) resolve(b *BunnyState, returnTo Kind, resume int, cause string) {
	if returnTo == KindWalk {
		t.enter(b, &Walk{FrameIdx: resume}, cause)
		return
	}
	t.enter(b, &Idle{}, cause)
}

func (t *BunnyTimers) settle(returnTo Kind, resume int, cause string) {
	t.resolve(t.bunny, returnTo, resume, cause)
	if t.OnSettle != nil {
		t.OnSettle(t.bunny.Animation.Kind())
	}
}

func loop(idx int, set []string) int {
	if len(set) == 0 {
		return 0
	}
	return (idx + 1) % len(set)
}

func (t *BunnyTimers) tickIdle() {
	if a, ok := t.bunny.Animation.(*Idle); ok {
		a.FrameIdx = loop(a.FrameIdx, t.frames.idle(t.bunny.FacingRight))
	}
}

func (t *BunnyTimers) tickWalk() {
	if a, ok := t.bunny.Animation.(*Walk); ok {
		a.FrameIdx = loop(a.FrameIdx, t.frames.walk(t.bunny.FacingRight))
	}
}

func (t *BunnyTimers) tickHop() {
	if a, ok := t.bunny.Animation.(*Hop); ok {
		a.FrameIdx = loop(a.FrameIdx, t.frames.hop(a.Direction))
	}
}

func (t *BunnyTimers) tickJump() {
	a, ok := t.bunny.Animation.(*Jump)
	if !ok {
		return
	}

	if a.FrameIdx+1 < len(t.frames.jump(t.bunny.FacingRight)) {
		a.FrameIdx++
		return
	}
	t.settle(a.ReturnTo, 0, "landed")
}

func (t *BunnyTimers) tickTransition() {
	a, ok := t.bunny.Animation.(*Transition)
	if !ok {
		return
	}

	if a.Type == IdleToWalk {
		// plays the walk-to-idle frames backward
		if a.FrameIdx > 0 {
			a.FrameIdx--
			return
		}
	} else if a.FrameIdx+1 < len(t.frames.transition(a.Type, t.bunny.FacingRight)) {
		a.FrameIdx++
		return
	}

	t.completeTransition(a)
}

// completeTransition applies the pending action of a finished transition.
// A pending hop or jump takes precedence over continuing to walk.
func (t *BunnyTimers) completeTransition(a *Transition) {
	b := t.bunny
	hop := a.PendingAction.hopDirection()

	switch {
	case a.IsTurn():
		if hop == HopNone {
			hop = a.Type.hopDirection()
		}
		t.enter(b, &Hop{Direction: hop, ReturnTo: a.ReturnTo, ResumeFrame: a.ResumeFrame}, "turned")
	case hop != HopNone:
		t.enter(b, &Hop{Direction: hop, ReturnTo: a.ReturnTo, ResumeFrame: a.ResumeFrame}, string(a.PendingAction))
	case a.PendingAction == PendingJump:
		t.enter(b, &Jump{ReturnTo: a.ReturnTo}, string(a.PendingAction))
	case a.Type == IdleToWalk:
		t.settle(KindWalk, 0, string(a.Type))
	default:
		t.settle(a.ReturnTo, a.ResumeFrame, string(a.Type))
	}
}
