package events

import "errors"

// FramesChangedEventData names the frames directory that changed on disk.
type FramesChangedEventData struct {
	Dir string
}

const (
	FramesChangedEventName = "FramesChanged"
)

// NewFramesChangedEvent creates FramesChangedEvent
func NewFramesChangedEvent(dir string) *Event {
	return &Event{
		Name: FramesChangedEventName,
		Args: []interface{}{
			FramesChangedEventData{Dir: dir},
		},
	}
}

// GetFramesChangedEventData gets FramesChangedEvent data
func (event *Event) GetFramesChangedEventData() (FramesChangedEventData, error) {
	arg, err := event.payload(FramesChangedEventName)
	if err != nil {
		return FramesChangedEventData{}, err
	}

	data, ok := arg.(FramesChangedEventData)
	if !ok {
		return FramesChangedEventData{}, errors.New("Event does not contain a directory")
	}

	return data, nil
}
