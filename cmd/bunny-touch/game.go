package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny"
	"github.com/wagner-austin/bunny/animation"
	"github.com/wagner-austin/bunny/config"
	"github.com/wagner-austin/bunny/events"
	"github.com/wagner-austin/bunny/timer"
)

const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Game drives one actor from the ebiten loop. Every tick advances the
// actor's clock by one frame and feeds it the input edges of that frame.
type Game struct {
	actor   *bunny.Actor
	clock   *timer.Clock
	keys    *keyTracker
	lean    *lean
	watcher *bunny.FramesWatcher

	touchIDs  []ebiten.TouchID
	mouseDown bool
	focused   bool
}

// NewGame creates a Game around a fresh actor. nil frames selects the
// built-in bunny.
func NewGame(cfg *config.Config, frames *animation.BunnyFrames) *Game {
	clock := timer.NewClock()
	return &Game{
		actor:   bunny.NewActor(cfg, frames, clock, nil),
		clock:   clock,
		keys:    newKeyTracker(),
		lean:    newLean(),
		focused: true,
	}
}

// Close releases the actor and the frames watcher.
func (g *Game) Close() {
	g.actor.Close()
	if g.watcher != nil {
		g.watcher.Close()
	}
}

func (g *Game) Update() error {
	now := time.Now()
	step := time.Second / time.Duration(ebiten.TPS())

	g.updateFocus()
	g.updateKeys()
	g.updateTouches(now)
	g.updateFrames()

	g.clock.Advance(step)
	g.lean.Update(g.actor.Touch.State.SlideKeyHeld, float32(step.Seconds()))
	return nil
}

// updateFocus releases every key when the window loses focus, since their
// release events will never arrive.
func (g *Game) updateFocus() {
	focused := ebiten.IsFocused()
	if g.focused && !focused {
		log.Debug("focus lost, releasing keys")
		g.actor.Keyboard.ReleaseAll()
		g.keys.Reset()
	}
	g.focused = focused
}

func (g *Game) updateKeys() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if name, ok := g.keys.Release(k); ok {
			g.handle(events.NewKeyEvent(name, false, false))
		}
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if name, ok := g.keys.Press(k, shift); ok {
			g.handle(events.NewKeyEvent(name, true, false))
		}
	}
}

func (g *Game) updateTouches(now time.Time) {
	if pressed := inpututil.AppendJustPressedTouchIDs(nil); len(pressed) > 0 {
		g.handle(events.NewTouchEvent(events.TouchStart, touchPoints(pressed), now))
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		g.handle(events.NewTouchEvent(events.TouchMove, touchPoints(g.touchIDs), now))
	}
	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		g.handle(events.NewTouchEvent(events.TouchEnd, touchPoints(g.touchIDs), now))
	}

	if len(g.touchIDs) > 0 {
		return
	}
	g.updateMouse(now)
}

// updateMouse plays a left-button drag as touch 0.
func (g *Game) updateMouse(now time.Time) {
	x, y := ebiten.CursorPosition()
	point := []events.TouchPoint{{Identifier: 0, X: float64(x), Y: float64(y)}}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouseDown = true
		g.handle(events.NewTouchEvent(events.TouchStart, point, now))
	case g.mouseDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.handle(events.NewTouchEvent(events.TouchMove, point, now))
	case g.mouseDown:
		g.mouseDown = false
		g.handle(events.NewTouchEvent(events.TouchEnd, nil, now))
	}
}

func (g *Game) updateFrames() {
	if g.watcher == nil {
		return
	}
	select {
	case e, ok := <-g.watcher.Events():
		if !ok {
			g.watcher = nil
			return
		}
		g.handle(e)
	default:
	}
}

func (g *Game) handle(e *events.Event) {
	if err := g.actor.HandleEvent(e); err != nil {
		log.Error(err)
	}
}

func touchPoints(ids []ebiten.TouchID) []events.TouchPoint {
	points := make([]events.TouchPoint, 0, len(ids))
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		points = append(points, events.TouchPoint{Identifier: int(id), X: float64(x), Y: float64(y)})
	}
	return points
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.actor.Frame()
	x := (screenWidth-maxLen(frame.Lines)*glyphWidth)/2 + int(g.lean.Offset())
	y := (screenHeight - len(frame.Lines)*glyphHeight) / 2
	for i, line := range frame.Lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*glyphHeight)
	}

	state := g.actor.State
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s frame %d", state.Animation.Kind(), frame.FrameIdx), 4, 4)
	if js := g.actor.Touch.State.Joystick; js != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("joystick %s", g.actor.Touch.State.CurrentDirection), 4, 20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func maxLen(lines []string) int {
	n := 0
	for _, line := range lines {
		if l := len([]rune(line)); l > n {
			n = l
		}
	}
	return n
}
