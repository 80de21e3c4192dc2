package events

const (
	// StopEventName asks the consumer loop to return.
	StopEventName = "Stop"
)

// NewStopEvent creates StopEvent
func NewStopEvent() *Event {
	return &Event{Name: StopEventName}
}
