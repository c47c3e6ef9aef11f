package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestTickerReportsDeltaSinceLastFrame(t *testing.T) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	defer SetClock(prev)

	var deltas []time.Duration
	ticker := NewTicker(func(d time.Duration) { deltas = append(deltas, d) })
	ticker.Start()
	defer ticker.Stop()

	clk.now = clk.now.Add(16 * time.Millisecond)
	StepTickers()
	clk.now = clk.now.Add(34 * time.Millisecond)
	StepTickers()

	assert.Equal(t, []time.Duration{16 * time.Millisecond, 34 * time.Millisecond}, deltas)
}

func TestTickerStop(t *testing.T) {
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	defer SetClock(prev)

	calls := 0
	ticker := NewTicker(func(time.Duration) { calls++ })
	ticker.Start()
	ticker.Start()
	assert.True(t, ticker.IsActive())
	assert.True(t, HasActiveTickers())

	ticker.Stop()
	ticker.Stop()
	StepTickers()

	assert.False(t, ticker.IsActive())
	assert.False(t, HasActiveTickers())
	assert.Zero(t, calls)
}

func TestSetClockNilRestoresSystemTime(t *testing.T) {
	prev := SetClock(nil)
	defer SetClock(prev)

	assert.WithinDuration(t, time.Now(), Now(), time.Second)
}
