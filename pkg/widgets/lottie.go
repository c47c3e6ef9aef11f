package widgets

import (
	"github.com/go-drift/drift-lottie/pkg/core"
	"github.com/go-drift/drift-lottie/pkg/errors"
	"github.com/go-drift/drift-lottie/pkg/logging"
	"github.com/go-drift/drift-lottie/pkg/lottie"
	"github.com/go-drift/drift-lottie/pkg/surface"
)

// Lottie hosts an engine-owned Lottie player on a surface of its own.
//
// # Lifecycle
//
// On mount the widget creates a player from Config through Engine, stamps
// the surface with a [LottieContainerIDAttribute] token, registers
// Listeners and applies the playback props. On unmount it removes the
// listeners, destroys the player and clears the token.
//
// # Updates
//
// A new player is created only when the source identity changes: a
// different *lottie.Animation pointer for data sources, or a different path
// for path sources. Other Config fields are read once at creation. The
// playback props (PlayingState, Speed, Direction, Segments) are re-applied
// on every update.
//
// # Listeners
//
// Listener callbacks are matched by *lottie.Callback identity. Build the
// slice once (for example in the parent's InitState) and pass the same
// handles on every rebuild; a slice with new handles swaps the
// registrations.
//
// # Creation Patterns
//
//	// Autoplay from a file
//	widgets.Lottie{Engine: engine, Config: lottie.Config{Source: lottie.FromPath("spinner.json")}}
//
//	// Loop a segment at double speed
//	widgets.Lottie{
//	    Engine:   engine,
//	    Config:   lottie.Config{Source: lottie.FromData(anim), Loop: lottie.Bool(true)},
//	    Segments: []lottie.Segment{{0, 30}},
//	    Speed:    2,
//	}
//
//	// Completion callback and access to the player
//	ref := &core.Ref[lottie.Player]{}
//	widgets.Lottie{
//	    Engine:       engine,
//	    Config:       cfg,
//	    Listeners:    []lottie.EventListener{lottie.On(lottie.EventComplete, onDone)},
//	    AnimationRef: ref,
//	}
//
// # Errors
//
// A config the engine rejects and an unknown PlayingState are programming
// errors: the widget panics with *errors.ConfigError.
type Lottie struct {
	// Engine creates the player. Required.
	Engine lottie.Engine

	// Config describes the animation. Container is ignored; the widget
	// supplies its own surface.
	Config lottie.Config

	// PlayingState is the desired playback state. Empty means Playing.
	PlayingState lottie.PlayingState

	// Speed is the playback rate. Zero means 1, so a speed of zero cannot be
	// requested; pause with PlayingState or use a tiny value to freeze.
	Speed float64

	// Direction is passed to the player as is.
	Direction lottie.Direction

	// Segments, when non-nil, makes Playing play these frame ranges.
	Segments []lottie.Segment

	// Listeners are registered on the player in order.
	Listeners []lottie.EventListener

	// AnimationRef, if set, receives the live player.
	AnimationRef *core.Ref[lottie.Player]

	// Width and Height size the surface. Empty means 100%.
	Width  string
	Height string

	// Class and Style are passed through to the surface.
	Class string
	Style map[string]string
}

func (l Lottie) CreateElement() core.Element {
	return core.NewStatefulElement(l, nil)
}

func (l Lottie) Key() any {
	return nil
}

func (l Lottie) CreateState() core.State {
	return &lottieState{}
}

type lottieState struct {
	core.StateBase
	surfaceRef core.Ref[*surface.Node]
	instance   lottieInstance
}

func (s *lottieState) widget() Lottie {
	return s.Element().Widget().(Lottie)
}

func (s *lottieState) InitState() {
	if s.widget().Engine == nil {
		panic(&errors.ConfigError{Op: "widgets.Lottie", Field: "Engine", Err: errors.New("engine is required")})
	}
	s.instance.log = logging.Named("widgets.lottie")
}

func (s *lottieState) DidMount() {
	w := s.widget()
	s.instance.mount(s.surfaceRef.Current(), w)
	applyPlayback(s.instance.player, w.playback())
}

func (s *lottieState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.widget()
	s.instance.update(w)
	applyPlayback(s.instance.player, w.playback())
}

func (s *lottieState) Dispose() {
	s.instance.unmount()
	s.StateBase.Dispose()
}

func (s *lottieState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	return SurfaceView{
		Width:  w.Width,
		Height: w.Height,
		Class:  w.Class,
		Style:  w.Style,
		Ref:    &s.surfaceRef,
	}
}
