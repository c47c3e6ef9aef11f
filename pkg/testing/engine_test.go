package testing_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/drift-lottie/pkg/errors"
	"github.com/go-drift/drift-lottie/pkg/lottie"
	drifttest "github.com/go-drift/drift-lottie/pkg/testing"
)

func TestRecordingEngineLog(t *testing.T) {
	engine := drifttest.NewRecordingEngine()
	p, err := engine.LoadAnimation(lottie.Config{Source: lottie.FromPath("a.json")})
	require.NoError(t, err)

	cb := lottie.NewCallback(nil)
	p.AddEventListener(lottie.EventComplete, cb)
	p.PlaySegments([]lottie.Segment{{0, 5}})
	p.SetSpeed(1.5)
	p.SetDirection(lottie.Reverse)
	p.RemoveEventListener(lottie.EventComplete, cb)
	p.Destroy("id-1")

	assert.Equal(t, []string{
		"0:create(path:a.json)",
		"0:add(complete)",
		"0:playSegments([[0 5]])",
		"0:setSpeed(1.5)",
		"0:setDirection(reverse)",
		"0:remove(complete)",
		"0:destroy(id-1)",
	}, engine.Log())

	rp := engine.Last()
	assert.True(t, rp.Destroyed())
	assert.Equal(t, []string{"id-1"}, rp.DestroyIDs())
	assert.Equal(t, 1, rp.AddCount())
	assert.Equal(t, 1, rp.RemoveCount())
	assert.Empty(t, rp.Listeners())
	assert.Empty(t, engine.Live())
}

func TestRecordingEngineErrIsReturnedOnce(t *testing.T) {
	engine := drifttest.NewRecordingEngine()
	engine.Err = fmt.Errorf("rejected")

	p, err := engine.LoadAnimation(lottie.Config{})
	assert.Nil(t, p)
	assert.EqualError(t, err, "rejected")
	assert.Empty(t, engine.Configs())

	_, err = engine.LoadAnimation(lottie.Config{})
	assert.NoError(t, err)
	assert.Len(t, engine.Configs(), 1)
}

func TestRecordingPlayerEmit(t *testing.T) {
	engine := drifttest.NewRecordingEngine()
	p, _ := engine.LoadAnimation(lottie.Config{})
	rp := engine.Last()

	var got []lottie.EventName
	l := lottie.On(lottie.EventLoopComplete, func(e lottie.Event) { got = append(got, e.Type) })
	p.AddEventListener(l.Name, l.Callback)

	rp.Emit(lottie.Event{Type: lottie.EventComplete})
	rp.Emit(lottie.Event{Type: lottie.EventLoopComplete})

	assert.Equal(t, []lottie.EventName{lottie.EventLoopComplete}, got)
	assert.True(t, rp.HasListener(l.Name, l.Callback))
}

func TestRecordingPlayerPanicsAfterDestroy(t *testing.T) {
	engine := drifttest.NewRecordingEngine()
	p, _ := engine.LoadAnimation(lottie.Config{})
	p.Destroy("x")

	defer func() {
		var lerr *errors.LifecycleError
		require.True(t, errors.As(recover().(error), &lerr))
		assert.Equal(t, "destroyed", lerr.State)
	}()
	p.Play()
}

func TestRecordingEngineResetLog(t *testing.T) {
	engine := drifttest.NewRecordingEngine()
	p, _ := engine.LoadAnimation(lottie.Config{})
	p.Play()

	engine.ResetLog()
	p.Pause()

	assert.Equal(t, []string{"0:pause"}, engine.Log())
	assert.Equal(t, []string{"pause"}, engine.Last().Calls())
	assert.Len(t, engine.Players(), 1)
}
