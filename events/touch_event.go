package events

import (
	"errors"
	"time"
)

// TouchPhase mirrors the DOM touch event types.
type TouchPhase string

const (
	TouchStart  TouchPhase = "touchstart"
	TouchMove   TouchPhase = "touchmove"
	TouchEnd    TouchPhase = "touchend"
	TouchCancel TouchPhase = "touchcancel"
)

// TouchPoint is one contact in a touch list.
type TouchPoint struct {
	Identifier int
	X, Y       float64
}

// TouchEventData carries the touch list relevant to Phase: the new contacts
// for TouchStart, all current contacts for TouchMove and the contacts still
// down for TouchEnd and TouchCancel.
type TouchEventData struct {
	Phase   TouchPhase
	Touches []TouchPoint
	Time    time.Time
}

const (
	TouchEventName = "Touch"
)

// NewTouchEvent creates TouchEvent
func NewTouchEvent(phase TouchPhase, touches []TouchPoint, when time.Time) *Event {
	return &Event{
		Name: TouchEventName,
		Args: []interface{}{
			TouchEventData{Phase: phase, Touches: touches, Time: when},
		},
	}
}

// GetTouchEventData gets TouchEvent data
func (event *Event) GetTouchEventData() (TouchEventData, error) {
	arg, err := event.payload(TouchEventName)
	if err != nil {
		return TouchEventData{}, err
	}

	data, ok := arg.(TouchEventData)
	if !ok {
		return TouchEventData{}, errors.New("Event does not contain touches")
	}

	return data, nil
}
