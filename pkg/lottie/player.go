package lottie

import (
	"math"
	"slices"
	"time"

	"github.com/go-drift/drift-lottie/pkg/animation"
	"github.com/go-drift/drift-lottie/pkg/errors"
)

type registration struct {
	name     EventName
	callback *Callback
}

// AnimationItem is the DefaultEngine's Player. Frames advance on every
// animation.StepTickers call while playing.
type AnimationItem struct {
	engine    *DefaultEngine
	cfg       Config
	data      *Animation
	listeners []registration
	ticker    *animation.Ticker

	segment   Segment
	pending   []Segment
	frame     float64
	speed     float64
	direction Direction
	paused    bool
	playCount int
	destroyed bool
}

var _ Player = (*AnimationItem)(nil)

func newAnimationItem(e *DefaultEngine, cfg Config, data *Animation) *AnimationItem {
	item := &AnimationItem{
		engine:  e,
		cfg:     cfg,
		data:    data,
		segment: Segment{data.InPoint, data.OutPoint},
		speed:   1,
		paused:  true,
	}
	if cfg.InitialSegment != nil {
		item.segment = *cfg.InitialSegment
	}
	item.ticker = animation.NewTicker(item.advance)
	return item
}

func (i *AnimationItem) start() {
	i.emit(Event{Type: EventConfigReady})
	i.emit(Event{Type: EventDataReady})
	i.emit(Event{Type: EventDOMLoaded})
	if i.cfg.Autoplaying() && !i.destroyed {
		i.Play()
	}
}

func (i *AnimationItem) guard(op string) {
	if i.destroyed {
		panic(&errors.LifecycleError{Op: "lottie.AnimationItem." + op, State: "destroyed", Err: errors.ErrDestroyed})
	}
}

// Play resumes playback of the active segment.
func (i *AnimationItem) Play() {
	i.guard("Play")
	if !i.paused {
		return
	}
	i.paused = false
	i.ticker.Start()
}

// PlaySegments makes segments[0] the active segment, unless it already is,
// and queues the rest to play in order. Playback resumes if paused.
func (i *AnimationItem) PlaySegments(segments []Segment) {
	i.guard("PlaySegments")
	for _, s := range segments {
		if err := s.validate(); err != nil {
			panic(&errors.ConfigError{Op: "lottie.AnimationItem.PlaySegments", Field: "segments", Value: segments, Err: err})
		}
	}
	if len(segments) == 0 {
		i.Play()
		return
	}
	if segments[0] != i.segment {
		i.enterSegment(segments[0], 0)
		if i.destroyed {
			return
		}
	}
	i.pending = slices.Clone(segments[1:])
	i.Play()
}

// Pause halts playback on the current frame.
func (i *AnimationItem) Pause() {
	i.guard("Pause")
	i.halt()
}

// Stop halts playback and rewinds to the first frame of the active segment.
func (i *AnimationItem) Stop() {
	i.guard("Stop")
	i.halt()
	i.playCount = 0
	i.frame = 0
}

// SetSpeed sets the playback rate multiplier.
func (i *AnimationItem) SetSpeed(speed float64) {
	i.guard("SetSpeed")
	i.speed = speed
}

// SetDirection sets the playback direction. DirectionUnset plays forward.
func (i *AnimationItem) SetDirection(direction Direction) {
	i.guard("SetDirection")
	i.direction = direction
}

// AddEventListener registers callback for name. Registering the same pair
// twice delivers events twice.
func (i *AnimationItem) AddEventListener(name EventName, callback *Callback) {
	i.guard("AddEventListener")
	i.listeners = append(i.listeners, registration{name: name, callback: callback})
}

// RemoveEventListener removes one registration of callback for name. A nil
// callback removes every listener for name.
func (i *AnimationItem) RemoveEventListener(name EventName, callback *Callback) {
	i.guard("RemoveEventListener")
	if callback == nil {
		i.listeners = slices.DeleteFunc(i.listeners, func(r registration) bool { return r.name == name })
		return
	}
	idx := slices.Index(i.listeners, registration{name: name, callback: callback})
	if idx >= 0 {
		i.listeners = slices.Delete(i.listeners, idx, idx+1)
	}
}

// Destroy stops playback, fires the destroy event, drops all listeners and
// removes the item from its engine.
func (i *AnimationItem) Destroy(id string) {
	i.guard("Destroy")
	i.halt()
	i.emit(Event{Type: EventDestroy, Target: id})
	i.listeners = nil
	i.pending = nil
	i.destroyed = true
	i.engine.unregister(i, id)
}

// CurrentFrame returns the frame offset within the active segment.
func (i *AnimationItem) CurrentFrame() float64 { return i.frame }

// TotalFrames returns the length of the active segment.
func (i *AnimationItem) TotalFrames() float64 { return i.segment.Frames() }

// ActiveSegment returns the segment being played.
func (i *AnimationItem) ActiveSegment() Segment { return i.segment }

// IsPaused reports whether playback is halted.
func (i *AnimationItem) IsPaused() bool { return i.paused }

// IsDestroyed reports whether Destroy has been called.
func (i *AnimationItem) IsDestroyed() bool { return i.destroyed }

// Speed returns the playback rate multiplier.
func (i *AnimationItem) Speed() float64 { return i.speed }

// Direction returns the direction last set.
func (i *AnimationItem) Direction() Direction { return i.direction }

// Config returns the merged config the item was created from.
func (i *AnimationItem) Config() Config { return i.cfg }

// Data returns the animation being played.
func (i *AnimationItem) Data() *Animation { return i.data }

// ListenerCount returns the number of registrations for name.
func (i *AnimationItem) ListenerCount(name EventName) int {
	n := 0
	for _, r := range i.listeners {
		if r.name == name {
			n++
		}
	}
	return n
}

func (i *AnimationItem) halt() {
	i.paused = true
	i.ticker.Stop()
}

func (i *AnimationItem) emit(e Event) {
	e.CurrentFrame = i.frame
	e.TotalFrames = i.segment.Frames()
	e.Direction = i.direction
	listeners := slices.Clone(i.listeners)
	for _, r := range listeners {
		if r.name == e.Type {
			r.callback.Invoke(e)
		}
	}
}

func (i *AnimationItem) enterSegment(s Segment, overshoot float64) {
	i.segment = s
	if i.step(1) < 0 {
		i.frame = s.Frames() - overshoot
	} else {
		i.frame = overshoot
	}
	i.emit(Event{Type: EventSegmentStart})
}

// step returns the signed frame delta for d elapsed seconds.
func (i *AnimationItem) step(seconds float64) float64 {
	return seconds * i.data.FrameRate * i.speed * i.direction.sign()
}

func (i *AnimationItem) advance(delta time.Duration) {
	if i.paused || i.destroyed {
		return
	}
	total := i.segment.Frames()
	i.frame += i.step(delta.Seconds())

	switch {
	case i.frame >= total:
		i.finishCycle(true, i.frame-total)
	case i.frame < 0:
		i.finishCycle(false, -i.frame)
	default:
		i.emit(Event{Type: EventEnterFrame})
	}
}

func (i *AnimationItem) finishCycle(forward bool, overshoot float64) {
	if len(i.pending) > 0 {
		next := i.pending[0]
		i.pending = i.pending[1:]
		i.enterSegment(next, math.Min(overshoot, next.Frames()))
		if !i.destroyed {
			i.emit(Event{Type: EventEnterFrame})
		}
		return
	}

	total := i.segment.Frames()
	if i.cfg.Looping() && (i.cfg.LoopCount == 0 || i.playCount+1 < i.cfg.LoopCount) {
		i.playCount++
		wrapped := math.Mod(overshoot, total)
		if forward {
			i.frame = wrapped
		} else {
			i.frame = total - wrapped
		}
		i.emit(Event{Type: EventLoopComplete})
		if !i.destroyed {
			i.emit(Event{Type: EventEnterFrame})
		}
		return
	}

	if forward {
		i.frame = total
	} else {
		i.frame = 0
	}
	i.emit(Event{Type: EventEnterFrame})
	if i.destroyed {
		return
	}
	i.halt()
	i.emit(Event{Type: EventComplete})
}
