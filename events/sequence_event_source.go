package events

import "sync"

type sequenceEventSource struct {
	name      string
	eventChan chan *Event
	quit      chan struct{}
	closeOnce sync.Once
}

// NewSequenceEventSource creates an event source that emits evs in order and
// then finishes.
func NewSequenceEventSource(name string, evs ...*Event) EventSource {
	es := &sequenceEventSource{
		name:      name,
		eventChan: make(chan *Event),
		quit:      make(chan struct{}),
	}

	go func() {
		defer close(es.eventChan)
		for _, e := range evs {
			select {
			case es.eventChan <- e:
			case <-es.quit:
				return
			}
		}
	}()

	return es
}

func (es *sequenceEventSource) Name() string {
	return es.name
}

func (es *sequenceEventSource) Events() chan *Event {
	return es.eventChan
}

func (es *sequenceEventSource) Close() {
	es.closeOnce.Do(func() {
		close(es.quit)
	})
}
