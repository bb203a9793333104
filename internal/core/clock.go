package core

import "time"

// Clock converts frame timestamps into delta-time in seconds.
//
// The first tick after construction and the first tick after Resume both
// return 0 and re-anchor the previous timestamp, so a pause never shows up
// as one huge frame.
type Clock struct {
	last     time.Time
	started  bool
	paused   bool
	correct  bool
	fixed    bool
	fixedDt  float64
	elapsed  float64
	tickRate int
}

// NewClock returns a wall-clock driven Clock.
func NewClock() *Clock {
	return &Clock{}
}

// NewFixedClock returns a Clock that ignores timestamps and always
// advances by 1/tickRate seconds. Used for deterministic runs.
func NewFixedClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{fixed: true, fixedDt: 1 / float64(tickRate), tickRate: tickRate}
}

// Tick records a frame at now and returns the seconds since the previous one.
func (c *Clock) Tick(now time.Time) float64 {
	if c.paused {
		return 0
	}
	if c.fixed {
		if c.correct {
			c.correct = false
			return 0
		}
		c.elapsed += c.fixedDt
		return c.fixedDt
	}
	if !c.started || c.correct {
		c.started = true
		c.correct = false
		c.last = now
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt
	return dt
}

// Pause suspends the clock. Ticks return 0 until Resume.
func (c *Clock) Pause() {
	c.paused = true
}

// Resume restarts the clock and flags the next tick as a correction tick.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.correct = true
}

// Paused reports whether the clock is suspended.
func (c *Clock) Paused() bool {
	return c.paused
}

// Elapsed returns total simulated seconds, excluding pauses.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
