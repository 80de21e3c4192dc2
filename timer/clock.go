package timer

import "time"

// Clock is a fixed-timestep driver. Time only moves when Advance is called,
// which makes it suitable for a game loop's update step and for tests.
type Clock struct {
	now    time.Duration
	timers []*stepTimer
}

// NewClock creates new Clock
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the total time advanced so far.
func (c *Clock) Now() time.Duration {
	return c.now
}

// NewTimer creates a stopped timer driven by this clock.
func (c *Clock) NewTimer(name string, period time.Duration, fn func()) Timer {
	t := &stepTimer{
		name:   name,
		period: clampPeriod(period),
		fn:     fn,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every tick that falls due in
// order. A timer started from a callback accrues only the time that remains.
func (c *Clock) Advance(d time.Duration) {
	for d > 0 {
		step := d
		for _, t := range c.timers {
			if t.running && t.period-t.elapsed < step {
				step = t.period - t.elapsed
			}
		}

		c.now += step
		d -= step

		var due []*stepTimer
		for _, t := range c.timers {
			if !t.running {
				continue
			}
			t.elapsed += step
			if t.elapsed >= t.period {
				due = append(due, t)
			}
		}

		for _, t := range due {
			// an earlier callback may have stopped or restarted it
			if !t.running || t.elapsed < t.period {
				continue
			}
			t.elapsed -= t.period
			t.fn()
		}
	}
}

type stepTimer struct {
	name    string
	period  time.Duration
	fn      func()
	running bool
	elapsed time.Duration
}

func (t *stepTimer) Start() {
	if t.running {
		return
	}
	t.running = true
	t.elapsed = 0
}

func (t *stepTimer) Stop() {
	t.running = false
	t.elapsed = 0
}

func (t *stepTimer) IsRunning() bool {
	return t.running
}

func (t *stepTimer) String() string {
	return t.name
}
