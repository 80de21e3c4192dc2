package events

import "errors"

// TimerTickEventData carries the callback of the timer that ticked.
type TimerTickEventData struct {
	TimerName string
	Fire      func()
}

const (
	TimerTickEventName = "TimerTick"
)

// NewTimerTickEvent creates TimerTickEvent
func NewTimerTickEvent(timerName string, fire func()) *Event {
	return &Event{
		Name: TimerTickEventName,
		Args: []interface{}{
			TimerTickEventData{TimerName: timerName, Fire: fire},
		},
	}
}

// GetTimerTickEventData gets TimerTickEvent data
func (event *Event) GetTimerTickEventData() (TimerTickEventData, error) {
	arg, err := event.payload(TimerTickEventName)
	if err != nil {
		return TimerTickEventData{}, err
	}

	data, ok := arg.(TimerTickEventData)
	if !ok || data.Fire == nil {
		return TimerTickEventData{}, errors.New("Event does not contain a timer callback")
	}

	return data, nil
}
