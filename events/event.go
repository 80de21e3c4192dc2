package events

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Event is event Description
type Event struct {
	Name string
	Args []interface{}
}

// IDEventSource type to identify event sources
type IDEventSource = uint64

// EventSource is definition of the source of events.
type EventSource interface {
	Name() string
	Events() chan *Event
	Close()
}

// EventSources is set of event sources
type EventSources = []EventSource

// EventSourceMultiplexer funnels every registered source into one queue that
// is drained by a single goroutine, so consumers never see two events at once.
type EventSourceMultiplexer struct {
	mu    sync.Mutex
	idSeq IDEventSource

	multiplexer  chan event
	eventSources map[IDEventSource]EventSource

	quit      chan struct{}
	closeOnce sync.Once
}

// NewEventSourceMultiplexer creates new EventSourceMultiplexer
func NewEventSourceMultiplexer() *EventSourceMultiplexer {
	return &EventSourceMultiplexer{
		multiplexer:  make(chan event, 64),
		eventSources: make(map[IDEventSource]EventSource),
		quit:         make(chan struct{}),
	}
}

// NextEvent gets next event. It returns nil once the multiplexer is closed.
func (esm *EventSourceMultiplexer) NextEvent() *Event {
	for {
		var e event
		select {
		case e = <-esm.multiplexer:
		case <-esm.quit:
			return nil
		}

		esm.mu.Lock()
		es, ok := esm.eventSources[e.idEventSource]
		esm.mu.Unlock()
		if !ok { // The event is still relevant?
			continue
		}

		log.Tracef("NextEvent: Source=%s, Name=%s", es.Name(), e.event.Name)
		return e.event
	}
}

// AddEventSource adds new event source
func (esm *EventSourceMultiplexer) AddEventSource(eventSource EventSource) IDEventSource {
	esm.mu.Lock()
	id := esm.idSeq
	esm.idSeq++
	esm.eventSources[id] = eventSource
	esm.mu.Unlock()

	go esm.runEventSource(id, eventSource)

	return id
}

// RemoveEventSource removes event source. Events it already queued are
// discarded by NextEvent.
func (esm *EventSourceMultiplexer) RemoveEventSource(id IDEventSource) {
	esm.mu.Lock()
	eventSource, ok := esm.eventSources[id]
	delete(esm.eventSources, id)
	esm.mu.Unlock()

	if ok {
		eventSource.Close()
	}
}

// Close removes every source and releases NextEvent.
func (esm *EventSourceMultiplexer) Close() {
	esm.closeOnce.Do(func() {
		esm.mu.Lock()
		sources := esm.eventSources
		esm.eventSources = make(map[IDEventSource]EventSource)
		esm.mu.Unlock()

		for _, eventSource := range sources {
			eventSource.Close()
		}
		close(esm.quit)
	})
}

type event struct {
	idEventSource IDEventSource
	event         *Event
}

func (esm *EventSourceMultiplexer) runEventSource(id IDEventSource, eventSource EventSource) {
	log.Debugf("EventSource '%s' running", eventSource.Name())
	for e := range eventSource.Events() {
		select {
		case esm.multiplexer <- event{id, e}:
		case <-esm.quit:
			return
		}
	}
	log.Debugf("EventSource '%s' stopped", eventSource.Name())
}
