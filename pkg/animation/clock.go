package animation

import "time"

// Clock provides time for frame tickers. The default implementation uses
// system time. Tests inject a fake clock via SetClock to step playback
// deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var clock Clock = realClock{}

// SetClock replaces the ticker clock and returns the previous one so
// callers can restore it during cleanup. A nil clock restores system time.
func SetClock(c Clock) Clock {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	prev := clock
	if c == nil {
		c = realClock{}
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time {
	tickerMu.Lock()
	c := clock
	tickerMu.Unlock()
	return c.Now()
}
