package timer

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny/events"
)

// IntervalFactory creates wall-clock timers. Each running timer is an event
// source on the multiplexer; its ticks arrive as TimerTick events and must be
// fired by whoever drains the multiplexer.
type IntervalFactory struct {
	esm *events.EventSourceMultiplexer
}

// NewIntervalFactory creates new IntervalFactory
func NewIntervalFactory(esm *events.EventSourceMultiplexer) *IntervalFactory {
	return &IntervalFactory{esm: esm}
}

// NewTimer creates a stopped wall-clock timer.
func (f *IntervalFactory) NewTimer(name string, period time.Duration, fn func()) Timer {
	return &intervalTimer{
		esm:    f.esm,
		name:   name,
		period: clampPeriod(period),
		fn:     fn,
	}
}

type intervalTimer struct {
	esm     *events.EventSourceMultiplexer
	name    string
	period  time.Duration
	fn      func()
	running bool
	id      events.IDEventSource
}

func (t *intervalTimer) Start() {
	if t.running {
		return
	}

	src := events.NewTickerEventSource(t.name+"Timer", t.period, func() *events.Event {
		return events.NewTimerTickEvent(t.name, t.fn)
	})
	t.id = t.esm.AddEventSource(src)
	t.running = true
	logrus.Tracef("timer %s started every %v", t.name, t.period)
}

// Stop removes the source from the multiplexer, which drops any tick it had
// already queued.
func (t *intervalTimer) Stop() {
	if !t.running {
		return
	}

	t.esm.RemoveEventSource(t.id)
	t.running = false
	logrus.Tracef("timer %s stopped", t.name)
}

func (t *intervalTimer) IsRunning() bool {
	return t.running
}
