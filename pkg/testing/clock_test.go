package testing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/drift-lottie/pkg/animation"
	drifttest "github.com/go-drift/drift-lottie/pkg/testing"
)

func TestFakeClockAdvance(t *testing.T) {
	clock := drifttest.NewFakeClock()
	start := clock.Now()

	clock.Advance(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, clock.Now().Sub(start))
}

func TestFakeClockInstallRestores(t *testing.T) {
	clock := drifttest.NewFakeClock()
	restore := clock.Install()
	assert.Equal(t, clock.Now(), animation.Now())

	restore()
	assert.NotEqual(t, clock.Now(), animation.Now())
}

func TestFakeClockStepDrivesTickers(t *testing.T) {
	clock := drifttest.NewFakeClock()
	t.Cleanup(clock.Install())

	var deltas []time.Duration
	ticker := animation.NewTicker(func(d time.Duration) { deltas = append(deltas, d) })
	ticker.Start()
	defer ticker.Stop()

	clock.Step(16 * time.Millisecond)
	clock.StepN(2, 10*time.Millisecond)
	clock.Advance(time.Second)

	assert.Equal(t, []time.Duration{16 * time.Millisecond, 10 * time.Millisecond, 10 * time.Millisecond}, deltas)
}
