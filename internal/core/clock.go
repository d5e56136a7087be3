package core

import (
	"sync"
	"time"
)

// Clock supplies the monotonic time the simulation samples once per tick.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable clock for tests and headless runs.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// PausableClock wraps a source clock and stops time while paused.
// Time spent paused is subtracted from every later reading.
type PausableClock struct {
	src      Clock
	paused   bool
	pausedAt time.Time
	offset   time.Duration
}

// NewPausableClock wraps src.
func NewPausableClock(src Clock) *PausableClock {
	return &PausableClock{src: src}
}

// Now returns game time: frozen while paused, shifted by total pause afterwards.
func (c *PausableClock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.offset)
	}
	return c.src.Now().Add(-c.offset)
}

// Pause freezes game time. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.src.Now()
}

// Resume restarts game time. Resuming an unpaused clock is a no-op.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.offset += Elapsed(c.src.Now(), c.pausedAt)
}

// IsPaused reports whether the clock is frozen.
func (c *PausableClock) IsPaused() bool {
	return c.paused
}

// Elapsed returns now - since, clamped to zero for clocks that step backwards.
func Elapsed(now, since time.Time) time.Duration {
	d := now.Sub(since)
	if d < 0 {
		return 0
	}
	return d
}
