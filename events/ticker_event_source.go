package events

import (
	"sync"
	"time"
)

type tickerEventSource struct {
	name      string
	period    time.Duration
	newEvent  func() *Event
	eventChan chan *Event
	quit      chan struct{}
	closeOnce sync.Once
}

// NewTickerEventSource creates a source that emits newEvent() every period
// until it is closed.
func NewTickerEventSource(name string, period time.Duration, newEvent func() *Event) EventSource {
	es := &tickerEventSource{
		name:      name,
		period:    period,
		newEvent:  newEvent,
		eventChan: make(chan *Event),
		quit:      make(chan struct{}),
	}
	go es.run()
	return es
}

func (es *tickerEventSource) Name() string {
	return es.name
}

func (es *tickerEventSource) Events() chan *Event {
	return es.eventChan
}

func (es *tickerEventSource) Close() {
	es.closeOnce.Do(func() {
		close(es.quit)
	})
}

func (es *tickerEventSource) run() {
	defer close(es.eventChan)

	t := time.NewTicker(es.period)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			select {
			case es.eventChan <- es.newEvent():
			case <-es.quit:
				return
			}
		case <-es.quit:
			return
		}
	}
}
