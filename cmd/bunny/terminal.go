package main

import (
	"sort"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny/config"
	"github.com/wagner-austin/bunny/events"
)

// keyReleaser infers key releases from a stream of presses. Terminals only
// report presses, and a held key repeats them, so a key counts as held until
// no press has arrived for after.
type keyReleaser struct {
	after time.Duration
	held  map[string]time.Time
}

func newKeyReleaser(after time.Duration) *keyReleaser {
	return &keyReleaser{after: after, held: make(map[string]time.Time)}
}

// press records a press of key and reports whether it repeats a held key.
func (kr *keyReleaser) press(key string, now time.Time) (repeat bool) {
	_, repeat = kr.held[key]
	kr.held[key] = now
	return repeat
}

// expire forgets and returns the keys not pressed within after, by name.
func (kr *keyReleaser) expire(now time.Time) []string {
	var released []string
	for key, last := range kr.held {
		if now.Sub(last) >= kr.after {
			released = append(released, key)
			delete(kr.held, key)
		}
	}
	sort.Strings(released)
	return released
}

// domKey names a tcell key the way KeyMap does. ok is false for keys the
// actor never binds.
func domKey(ev *tcell.EventKey) (key string, ok bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "ArrowLeft", true
	case tcell.KeyRight:
		return "ArrowRight", true
	case tcell.KeyUp:
		return "ArrowUp", true
	case tcell.KeyDown:
		return "ArrowDown", true
	case tcell.KeyRune:
		return string(ev.Rune()), true
	}
	return "", false
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// mouseTouch turns a primary-button drag into a single touch with
// identifier 0, in pixels.
type mouseTouch struct {
	cellWidth, cellHeight float64
	down                  bool
}

func (mt *mouseTouch) translate(ev *tcell.EventMouse) *events.Event {
	x, y := ev.Position()
	point := events.TouchPoint{
		Identifier: 0,
		X:          float64(x) * mt.cellWidth,
		Y:          float64(y) * mt.cellHeight,
	}
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !mt.down:
		mt.down = true
		return events.NewTouchEvent(events.TouchStart, []events.TouchPoint{point}, ev.When())
	case pressed:
		return events.NewTouchEvent(events.TouchMove, []events.TouchPoint{point}, ev.When())
	case mt.down:
		mt.down = false
		return events.NewTouchEvent(events.TouchEnd, nil, ev.When())
	}
	return nil
}

type terminalEventSource struct {
	screen    tcell.Screen
	releaser  *keyReleaser
	mouse     *mouseTouch
	eventChan chan *events.Event
	quit      chan struct{}
	closeOnce sync.Once
}

// newTerminalEventSource reports terminal input as Key and Touch events, and
// a Stop event on Esc, q or Ctrl-C.
func newTerminalEventSource(screen tcell.Screen, cfg config.Terminal) events.EventSource {
	es := &terminalEventSource{
		screen:   screen,
		releaser: newKeyReleaser(cfg.ReleaseAfter),
		mouse: &mouseTouch{
			cellWidth:  float64(cfg.CellWidth),
			cellHeight: float64(cfg.CellHeight),
		},
		eventChan: make(chan *events.Event),
		quit:      make(chan struct{}),
	}
	go es.run()
	return es
}

func (es *terminalEventSource) Name() string {
	return "Terminal"
}

func (es *terminalEventSource) Events() chan *events.Event {
	return es.eventChan
}

func (es *terminalEventSource) Close() {
	es.closeOnce.Do(func() {
		close(es.quit)
	})
}

func (es *terminalEventSource) run() {
	defer close(es.eventChan)

	polled := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := es.screen.PollEvent()
			if ev == nil {
				close(polled)
				return
			}
			polled <- ev
		}
	}()

	check := time.NewTicker(es.releaser.after / 4)
	defer check.Stop()

	for {
		select {
		case ev, ok := <-polled:
			if !ok {
				return
			}
			for _, e := range es.translate(ev) {
				if !es.send(e) {
					return
				}
			}
		case now := <-check.C:
			for _, key := range es.releaser.expire(now) {
				if !es.send(events.NewKeyEvent(key, false, false)) {
					return
				}
			}
		case <-es.quit:
			return
		}
	}
}

func (es *terminalEventSource) send(e *events.Event) bool {
	select {
	case es.eventChan <- e:
		return true
	case <-es.quit:
		return false
	}
}

func (es *terminalEventSource) translate(ev tcell.Event) []*events.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return []*events.Event{events.NewStopEvent()}
		}
		key, ok := domKey(ev)
		if !ok {
			return nil
		}
		repeat := es.releaser.press(key, ev.When())
		log.Tracef("terminal key %q repeat=%v", key, repeat)
		return []*events.Event{events.NewKeyEvent(key, true, repeat)}
	case *tcell.EventMouse:
		if e := es.mouse.translate(ev); e != nil {
			return []*events.Event{e}
		}
	case *tcell.EventResize:
		es.screen.Sync()
		return []*events.Event{newRenderEvent()}
	}
	return nil
}
