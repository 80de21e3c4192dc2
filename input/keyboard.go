package input

import (
	"github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny/animation"
)

// Action is what a bound key asks of the actor.
type Action string

const (
	ActionNone      Action = ""
	ActionLeft      Action = "left"
	ActionRight     Action = "right"
	ActionJump      Action = "jump"
	ActionHopAway   Action = "hop_away"
	ActionHopToward Action = "hop_toward"
)

// KeyMap binds DOM key names to actions.
type KeyMap map[string]Action

// DefaultKeyMap binds the arrows, WASD and space.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"ArrowLeft":  ActionLeft,
		"a":          ActionLeft,
		"A":          ActionLeft,
		"ArrowRight": ActionRight,
		"d":          ActionRight,
		"D":          ActionRight,
		" ":          ActionJump,
		"j":          ActionJump,
		"J":          ActionJump,
		"ArrowUp":    ActionHopAway,
		"w":          ActionHopAway,
		"W":          ActionHopAway,
		"ArrowDown":  ActionHopToward,
		"s":          ActionHopToward,
		"S":          ActionHopToward,
	}
}

type heldKey struct {
	key    string
	action Action
}

// KeyboardAdapter translates key edges into shared handler calls. It tracks
// which keys are held so the most recently pressed direction wins and a
// release only matters when it changes what is held.
type KeyboardAdapter struct {
	// Peers are the other adapters driving the same actor. What they hold
	// is honoured when a key release leaves the keyboard holding nothing.
	Peers []Holder

	keys KeyMap
	held []heldKey

	bunny  *animation.BunnyState
	frames *animation.BunnyFrames
	timers *animation.BunnyTimers
}

// NewKeyboardAdapter creates new KeyboardAdapter
func NewKeyboardAdapter(bunny *animation.BunnyState, frames *animation.BunnyFrames, timers *animation.BunnyTimers, keys KeyMap) *KeyboardAdapter {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &KeyboardAdapter{
		keys:   keys,
		bunny:  bunny,
		frames: frames,
		timers: timers,
	}
}

// HeldSide returns the walk direction of the most recently pressed walk key.
func (k *KeyboardAdapter) HeldSide() Side {
	for i := len(k.held) - 1; i >= 0; i-- {
		switch k.held[i].action {
		case ActionLeft:
			return SideLeft
		case ActionRight:
			return SideRight
		}
	}
	return SideNone
}

// HeldHop returns the direction of the most recently pressed hop key.
func (k *KeyboardAdapter) HeldHop() animation.HopDirection {
	for i := len(k.held) - 1; i >= 0; i-- {
		switch k.held[i].action {
		case ActionHopAway:
			return animation.HopAway
		case ActionHopToward:
			return animation.HopToward
		}
	}
	return animation.HopNone
}

func (k *KeyboardAdapter) holders() []Holder {
	return append([]Holder{k}, k.Peers...)
}

func (k *KeyboardAdapter) indexOf(key string) int {
	for i, h := range k.held {
		if h.key == key {
			return i
		}
	}
	return -1
}

// KeyDown handles a key press. Auto-repeat presses are ignored.
func (k *KeyboardAdapter) KeyDown(key string, repeat bool) {
	if repeat {
		return
	}
	action, ok := k.keys[key]
	if !ok || k.indexOf(key) >= 0 {
		return
	}

	logrus.Tracef("keydown %q -> %s", key, action)
	prevHop := k.HeldHop()
	k.held = append(k.held, heldKey{key: key, action: action})

	b := k.bunny
	switch action {
	case ActionLeft, ActionRight:
		// walking and hopping are exclusive; the hold is picked up when the hop ends
		if prevHop != animation.HopNone {
			return
		}
		animation.HandleWalkKeyDown(b, k.frames, k.timers, action == ActionRight)
	case ActionJump:
		if !b.Is(animation.KindJump) && !animation.IsPendingJump(b) && !b.Is(animation.KindHop) {
			animation.HandleJumpInput(b, k.frames, k.timers)
		}
	case ActionHopAway, ActionHopToward:
		hop := k.HeldHop()
		if prevHop != animation.HopNone && prevHop != hop {
			animation.HandleHopRelease(b, k.timers)
		}
		animation.HandleHopInput(b, k.timers, hop)
	}
}

// KeyUp handles a key release.
func (k *KeyboardAdapter) KeyUp(key string) {
	i := k.indexOf(key)
	if i < 0 {
		return
	}

	action := k.held[i].action
	prevSide, prevHop := k.HeldSide(), k.HeldHop()
	k.held = append(k.held[:i], k.held[i+1:]...)
	logrus.Tracef("keyup %q -> %s", key, action)

	b := k.bunny
	switch action {
	case ActionLeft, ActionRight:
		side := k.HeldSide()
		if side == prevSide || k.HeldHop() != animation.HopNone {
			return
		}
		if side == SideNone {
			driveWalk(b, k.frames, k.timers, heldSide(k.Peers...))
			return
		}
		animation.HandleWalkKeyDown(b, k.frames, k.timers, side == SideRight)
	case ActionHopAway, ActionHopToward:
		hop := k.HeldHop()
		if hop == prevHop {
			return
		}
		animation.HandleHopRelease(b, k.timers)
		if hop != animation.HopNone {
			animation.HandleHopInput(b, k.timers, hop)
			return
		}
		Reconcile(b, k.frames, k.timers, k.holders()...)
	}
}

// ReleaseAll releases every held key, newest first, as if the keyboard lost
// focus.
func (k *KeyboardAdapter) ReleaseAll() {
	for len(k.held) > 0 {
		k.KeyUp(k.held[len(k.held)-1].key)
	}
}
