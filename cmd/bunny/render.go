package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wagner-austin/bunny"
	"github.com/wagner-austin/bunny/animation"
	"github.com/wagner-austin/bunny/events"
)

const renderEventName = "Render"

func newRenderEvent() *events.Event {
	return &events.Event{Name: renderEventName}
}

func fpsPeriod(fps int) time.Duration {
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

type renderer struct {
	screen tcell.Screen
}

func (r *renderer) handle(a *bunny.Actor, _ *events.Event) error {
	r.draw(a)
	return nil
}

func (r *renderer) draw(a *bunny.Actor) {
	s := r.screen
	s.Clear()
	w, h := s.Size()

	frame := a.Frame()
	top := (h - len(frame.Lines)) / 2
	for i, line := range frame.Lines {
		drawText(s, (w-width(frame.Lines))/2, top+i, line, tcell.StyleDefault)
	}

	status := fmt.Sprintf("%s frame %d  %s", a.State.Animation.Kind(), frame.FrameIdx, facing(a.State))
	if tr, ok := a.State.Animation.(*animation.Transition); ok {
		status += "  " + string(tr.Type)
	}
	drawText(s, 1, h-2, status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	drawText(s, 1, h-1, "arrows/wasd move  space/j jump  up/down hop  drag with the mouse  q quit",
		tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	s.Show()
}

func facing(b *animation.BunnyState) string {
	if b.FacingRight {
		return "facing right"
	}
	return "facing left"
}

func width(lines []string) int {
	w := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > w {
			w = n
		}
	}
	return w
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
