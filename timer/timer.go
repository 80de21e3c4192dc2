// Package timer provides the restartable interval used to drive animation
// frames, with a fixed-timestep driver for game loops and tests and a
// wall-clock driver that delivers ticks through an event multiplexer.
package timer

import "time"

// minPeriod bounds degenerate periods so a driver can never spin.
const minPeriod = time.Millisecond

// Timer invokes one callback on a fixed period while running.
//
// Start is a no-op while running and Stop is a no-op while stopped. After
// Stop returns no further callback is delivered, even for a tick that was
// already due.
type Timer interface {
	Start()
	Stop()
	IsRunning() bool
}

// Factory creates timers bound to one scheduling driver.
type Factory interface {
	NewTimer(name string, period time.Duration, fn func()) Timer
}

func clampPeriod(period time.Duration) time.Duration {
	if period < minPeriod {
		return minPeriod
	}
	return period
}
