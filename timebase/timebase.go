// Package timebase implements a free running 16-bit millisecond counter for
// cooperative polling loops.
//
// The counter wraps every 65536 ticks. All interval arithmetic is done with
// unsigned subtraction, so intervals are valid as long as they are shorter
// than a full period.
package timebase

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Clock is a millisecond counter. Tick must have a single caller, normally a
// timer interrupt or the goroutine started by Drive. The zero value is ready
// to use.
type Clock struct {
	ticks atomic.Uint32
}

// Tick advances the counter by one. Safe to call from an interrupt.
func (c *Clock) Tick() {
	c.ticks.Add(1)
}

// Now returns the current tick count.
func (c *Clock) Now() uint16 {
	return uint16(c.ticks.Load())
}

// Elapsed returns the ticks passed since start, accounting for wraparound.
func (c *Clock) Elapsed(start uint16) uint16 {
	return c.Now() - start
}

// Sleep spins until ms ticks have passed.
func (c *Clock) Sleep(ms uint16) {
	start := c.Now()
	for c.Elapsed(start) < ms {
		runtime.Gosched()
	}
}

// SleepSeconds spins for s seconds.
func (c *Clock) SleepSeconds(s uint16) {
	for ; s != 0; s-- {
		c.Sleep(1000)
	}
}

// Every reports whether d ticks have passed since *start. When they have,
// *start is moved to the current time. It never blocks.
func (c *Clock) Every(start *uint16, d uint16) bool {
	now := c.Now()
	if now-*start >= d {
		*start = now
		return true
	}
	return false
}

// Drive calls Tick once per period until stop is closed. It is the tick
// source on targets where no timer interrupt is wired to the Clock.
func (c *Clock) Drive(period time.Duration, stop <-chan struct{}) {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			c.Tick()
		case <-stop:
			return
		}
	}
}
