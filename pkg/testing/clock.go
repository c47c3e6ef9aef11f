package testing

import (
	"sync"
	"time"

	"github.com/go-drift/drift-lottie/pkg/animation"
)

// FakeClock provides controllable time for deterministic playback tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d without running any frame.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Step advances the clock by d and runs one frame of every active ticker.
func (c *FakeClock) Step(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}

// StepN runs n frames of d each.
func (c *FakeClock) StepN(n int, d time.Duration) {
	for range n {
		c.Step(d)
	}
}

// Install makes c the animation clock and returns a func restoring the
// previous one.
func (c *FakeClock) Install() (restore func()) {
	prev := animation.SetClock(c)
	return func() { animation.SetClock(prev) }
}
