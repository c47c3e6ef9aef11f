// Package animation provides the frame timing primitives that drive
// Lottie playback.
//
// A [Ticker] receives the time elapsed since its previous frame. Tickers do
// not own a goroutine: the host's frame loop calls [StepTickers] once per
// frame, which keeps every callback on the UI thread.
//
//	t := animation.NewTicker(func(delta time.Duration) {
//	    player.advance(delta)
//	})
//	t.Start()
//	defer t.Stop()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
type Ticker struct {
	callback func(delta time.Duration)
	isActive bool
	last     time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(delta time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. The first frame reports the time since Start.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.last = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

func (t *Ticker) tick(now time.Time) {
	if !t.isActive || t.callback == nil {
		return
	}
	delta := now.Sub(t.last)
	t.last = now
	t.callback(delta)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host's frame loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	now := clock.Now()
	tickerMu.Unlock()

	for _, ticker := range tickers {
		ticker.tick(now)
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
