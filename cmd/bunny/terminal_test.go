package main

import (
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wagner-austin/bunny/events"
)

func TestKeyReleaser(t *testing.T) {
	start := time.Now()
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }
	kr := newKeyReleaser(550 * time.Millisecond)

	if kr.press("a", at(0)) {
		t.Error("first press is not a repeat")
	}
	if !kr.press("a", at(500)) {
		t.Error("press of a held key is a repeat")
	}
	kr.press("d", at(100))

	if got := kr.expire(at(600)); got != nil {
		t.Errorf("nothing should expire yet, got %v", got)
	}
	if got := kr.expire(at(700)); !reflect.DeepEqual(got, []string{"d"}) {
		t.Errorf("expected d released, got %v", got)
	}
	if got := kr.expire(at(1100)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("expected a released, got %v", got)
	}
	if kr.press("a", at(1200)) {
		t.Error("a released key starts a fresh press")
	}
}

func TestMouseTouch(t *testing.T) {
	mt := &mouseTouch{cellWidth: 8, cellHeight: 16}

	if e := mt.translate(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone)); e != nil {
		t.Errorf("hover must not touch, got %+v", e)
	}

	phases := []struct {
		x, y    int
		buttons tcell.ButtonMask
		phase   events.TouchPhase
		touches int
	}{
		{2, 3, tcell.Button1, events.TouchStart, 1},
		{5, 3, tcell.Button1, events.TouchMove, 1},
		{5, 3, tcell.ButtonNone, events.TouchEnd, 0},
	}
	for _, p := range phases {
		e := mt.translate(tcell.NewEventMouse(p.x, p.y, p.buttons, tcell.ModNone))
		if e == nil {
			t.Fatalf("no event for %s", p.phase)
		}
		data, err := e.GetTouchEventData()
		if err != nil {
			t.Fatal(err)
		}
		if data.Phase != p.phase || len(data.Touches) != p.touches {
			t.Errorf("got %s with %d touches, want %s with %d", data.Phase, len(data.Touches), p.phase, p.touches)
		}
		if p.touches == 1 {
			touch := data.Touches[0]
			if touch.Identifier != 0 || touch.X != float64(p.x*8) || touch.Y != float64(p.y*16) {
				t.Errorf("unexpected touch %+v", touch)
			}
		}
	}
}

func TestFPSPeriod(t *testing.T) {
	if got := fpsPeriod(25); got != 40*time.Millisecond {
		t.Errorf("got %v", got)
	}
	if got := fpsPeriod(0); got != time.Second/30 {
		t.Errorf("got %v", got)
	}
}
