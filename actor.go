// Package bunny animates an ASCII bunny that walks, jumps and hops in depth
// in response to keyboard and touch input.
package bunny

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/twinj/uuid"

	"github.com/wagner-austin/bunny/animation"
	"github.com/wagner-austin/bunny/config"
	"github.com/wagner-austin/bunny/events"
	"github.com/wagner-austin/bunny/input"
	"github.com/wagner-austin/bunny/timer"
)

// EventHandler handles an event the actor does not know about.
type EventHandler func(a *Actor, event *events.Event) error

// Actor is one animated bunny: its state, frames and timers plus the
// keyboard and touch adapters feeding them.
//
// An actor is not safe for concurrent use. Either drain a multiplexer with
// Run, or call HandleEvent and the adapters from a single goroutine such as a
// game loop.
type Actor struct {
	ID       string
	State    *animation.BunnyState
	Frames   *animation.BunnyFrames
	Timers   *animation.BunnyTimers
	Keyboard *input.KeyboardAdapter
	Touch    *input.TouchAdapter

	log      *logrus.Entry
	esm      *events.EventSourceMultiplexer
	handlers map[string]EventHandler

	mu        sync.Mutex
	sources   []events.IDEventSource
	closeOnce sync.Once
}

// NewActor creates an actor at rest facing right. A nil cfg uses the
// defaults and nil frames the built-in bunny. esm may be nil when the actor
// is driven directly through HandleEvent and timer.Clock.
func NewActor(cfg *config.Config, frames *animation.BunnyFrames, factory timer.Factory, esm *events.EventSourceMultiplexer) *Actor {
	if cfg == nil {
		cfg = config.Default()
	}
	if frames == nil {
		frames = DefaultFrames()
	}

	a := &Actor{
		ID:       uuid.NewV4().String(),
		State:    animation.CreateInitialBunnyState(),
		Frames:   frames,
		esm:      esm,
		handlers: make(map[string]EventHandler),
	}
	a.log = logrus.WithField("actor", a.ID)

	a.Timers = animation.CreateBunnyTimers(a.State, a.Frames, factory, cfg.AnimationTiming())
	a.Timers.Log = a.log
	a.Keyboard = input.NewKeyboardAdapter(a.State, a.Frames, a.Timers, cfg.KeyMap())
	a.Touch = input.NewTouchAdapter(a.State, a.Frames, a.Timers, cfg.TouchConfig())
	a.Keyboard.Peers = []input.Holder{a.Touch}
	a.Touch.Peers = []input.Holder{a.Keyboard}
	a.Timers.OnSettle = func(kind animation.Kind) {
		input.Reconcile(a.State, a.Frames, a.Timers, a.Keyboard, a.Touch)
	}

	a.log.Debug("actor created")
	return a
}

// On registers fn for events named name.
func (a *Actor) On(name string, fn EventHandler) {
	a.handlers[name] = fn
}

// AddEventSource attaches src to the actor's multiplexer. The source is
// closed with the actor.
func (a *Actor) AddEventSource(src events.EventSource) (events.IDEventSource, error) {
	if a.esm == nil {
		return 0, errors.New("bunny: actor has no event multiplexer")
	}
	return a.track(a.esm.AddEventSource(src)), nil
}

func (a *Actor) track(id events.IDEventSource) events.IDEventSource {
	a.mu.Lock()
	a.sources = append(a.sources, id)
	a.mu.Unlock()
	return id
}

// Run handles events from the multiplexer until a Stop event arrives or the
// multiplexer is closed. Handler errors are logged and do not stop the loop.
func (a *Actor) Run() error {
	if a.esm == nil {
		return errors.New("bunny: actor has no event multiplexer")
	}

	for event := a.esm.NextEvent(); event != nil; event = a.esm.NextEvent() {
		if event.Name == events.StopEventName {
			a.log.Info("stop requested")
			return nil
		}
		if err := a.HandleEvent(event); err != nil {
			a.log.Error(err)
		}
	}
	return nil
}

// Stop makes Run return once the events queued before it are handled. It
// may be called from any goroutine.
func (a *Actor) Stop() {
	if a.esm != nil {
		a.track(a.esm.AddEventSource(events.NewSequenceEventSource("Stop", events.NewStopEvent())))
	}
}

// HandleEvent applies one event to the actor.
func (a *Actor) HandleEvent(event *events.Event) error {
	switch event.Name {
	case events.KeyEventName:
		data, err := event.GetKeyEventData()
		if err != nil {
			return err
		}
		if data.Down {
			a.Keyboard.KeyDown(data.Key, data.Repeat)
		} else {
			a.Keyboard.KeyUp(data.Key)
		}

	case events.TouchEventName:
		data, err := event.GetTouchEventData()
		if err != nil {
			return err
		}
		touches := make([]input.Touch, len(data.Touches))
		for i, p := range data.Touches {
			touches[i] = input.Touch{Identifier: p.Identifier, X: p.X, Y: p.Y}
		}
		switch data.Phase {
		case events.TouchStart:
			a.Touch.TouchStart(touches, data.Time)
		case events.TouchMove:
			a.Touch.TouchMove(touches, data.Time)
		case events.TouchEnd:
			a.Touch.TouchEnd(touches, data.Time)
		case events.TouchCancel:
			a.Touch.TouchCancel(touches, data.Time)
		default:
			return fmt.Errorf("bunny: unknown touch phase %q", data.Phase)
		}

	case events.TimerTickEventName:
		data, err := event.GetTimerTickEventData()
		if err != nil {
			return err
		}
		data.Fire()

	case events.FramesChangedEventName:
		data, err := event.GetFramesChangedEventData()
		if err != nil {
			return err
		}
		return a.ReloadFrames(data.Dir)

	default:
		fn, ok := a.handlers[event.Name]
		if !ok {
			return fmt.Errorf("bunny: no handler for event %q", event.Name)
		}
		return fn(a, event)
	}
	return nil
}

// ReloadFrames replaces the actor's frames with the sets found in dir. The
// current animation keeps its frame index; an index past the end of a
// shorter set renders empty until the animation wraps or moves on. On error
// the old frames stay in place.
func (a *Actor) ReloadFrames(dir string) error {
	frames, err := LoadFrames(dir)
	if err != nil {
		return err
	}
	*a.Frames = *frames
	a.log.WithField("dir", dir).Info("frames reloaded")
	return nil
}

// Frame returns the lines to draw for the current animation.
func (a *Actor) Frame() animation.FrameResult {
	return animation.GetBunnyFrame(a.State, a.Frames)
}

// Close stops the actor's timers and closes the event sources it added.
// The multiplexer itself belongs to the caller.
func (a *Actor) Close() {
	a.closeOnce.Do(func() {
		a.Timers.StopAll()

		a.mu.Lock()
		sources := a.sources
		a.sources = nil
		a.mu.Unlock()
		if a.esm != nil {
			for _, id := range sources {
				a.esm.RemoveEventSource(id)
			}
		}
		a.log.Debug("actor closed")
	})
}
