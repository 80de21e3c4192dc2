package events

import "errors"

// KeyEventData describes a single key edge. Key follows DOM naming
// ("ArrowLeft", "a", " ").
type KeyEventData struct {
	Key    string
	Down   bool
	Repeat bool
}

const (
	KeyEventName = "Key"
)

// NewKeyEvent creates KeyEvent
func NewKeyEvent(key string, down bool, repeat bool) *Event {
	return &Event{
		Name: KeyEventName,
		Args: []interface{}{
			KeyEventData{Key: key, Down: down, Repeat: repeat},
		},
	}
}

// GetKeyEventData gets KeyEvent data
func (event *Event) GetKeyEventData() (KeyEventData, error) {
	arg, err := event.payload(KeyEventName)
	if err != nil {
		return KeyEventData{}, err
	}

	data, ok := arg.(KeyEventData)
	if !ok {
		return KeyEventData{}, errors.New("Event does not contain a key")
	}

	return data, nil
}
