package widgets

import (
	"go.uber.org/zap"

	"github.com/go-drift/drift-lottie/pkg/core"
	"github.com/go-drift/drift-lottie/pkg/errors"
	"github.com/go-drift/drift-lottie/pkg/lottie"
	"github.com/go-drift/drift-lottie/pkg/surface"
)

type instancePhase int

const (
	instanceUnattached instancePhase = iota
	instanceAttached
)

func (p instancePhase) String() string {
	if p == instanceAttached {
		return "attached"
	}
	return "unattached"
}

// lottieInstance owns at most one engine player bound to one surface.
//
//	Unattached --create--> Attached --destroy--> Unattached
//
// The surface is borrowed from the host; only its identity attribute is
// touched.
type lottieInstance struct {
	phase     instancePhase
	engine    lottie.Engine
	surface   surface.Attributes
	config    lottie.Config
	player    lottie.Player
	ref       *core.Ref[lottie.Player]
	listeners listenerRegistry
	log       *zap.Logger
}

// mount builds the working config (defaults, then caller config, then the
// surface), creates the player and attaches listeners.
func (in *lottieInstance) mount(node surface.Attributes, w Lottie) {
	in.engine = w.Engine
	in.surface = node
	in.ref = w.AnimationRef
	in.config = lottie.Merge(lottie.DefaultConfig(), w.Config)
	in.config.Container = node
	in.create()
	in.listeners.attach(in.player, w.Listeners)
}

// update recreates the player when the source identity changed, and
// otherwise only brings the listener set in line with w.
func (in *lottieInstance) update(w Lottie) {
	in.publishTo(w.AnimationRef)

	if !lottie.SameSource(in.config.Source, w.Config.Source) {
		in.listeners.detach(in.player)
		in.destroy()
		in.config = lottie.Merge(in.config, w.Config)
		in.config.Source = w.Config.Source
		in.config.Container = in.surface
		in.create()
		in.listeners.attach(in.player, w.Listeners)
		return
	}

	if !in.listeners.matches(w.Listeners) {
		in.listeners.detach(in.player)
		in.listeners.attach(in.player, w.Listeners)
	}
}

// unmount releases the player and every listener on it. A recreation that
// failed half way leaves the instance unattached; the ref is cleared either
// way.
func (in *lottieInstance) unmount() {
	if in.phase == instanceAttached {
		in.listeners.detach(in.player)
		in.destroy()
	}
	in.config.Source = nil
	if in.ref != nil {
		in.ref.Clear()
	}
}

func (in *lottieInstance) create() {
	if in.phase != instanceUnattached {
		panic(&errors.LifecycleError{Op: "widgets.Lottie.create", State: in.phase.String(), Err: errors.New("player already attached")})
	}
	player, err := in.engine.LoadAnimation(in.config)
	if err != nil {
		panic(&errors.ConfigError{
			Op:    "widgets.Lottie",
			Field: "Config",
			Value: lottie.Describe(in.config.Source),
			Err:   err,
		})
	}
	in.player = player
	in.phase = instanceAttached
	if in.ref != nil {
		in.ref.Set(player)
	}
	id := ensureIdentity(in.surface)
	in.log.Debug("player created", zap.String("id", id), zap.String("source", lottie.Describe(in.config.Source)))
}

func (in *lottieInstance) destroy() {
	if in.phase != instanceAttached {
		panic(&errors.LifecycleError{Op: "widgets.Lottie.destroy", State: in.phase.String(), Err: errors.ErrNotAttached})
	}
	id := surfaceIdentity(in.surface)
	in.player.Destroy(id)
	clearIdentity(in.surface)
	in.player = nil
	in.phase = instanceUnattached
	if in.ref != nil {
		in.ref.Clear()
	}
	in.log.Debug("player destroyed", zap.String("id", id))
}

// publishTo moves the published player to ref when the caller swapped refs.
func (in *lottieInstance) publishTo(ref *core.Ref[lottie.Player]) {
	if ref == in.ref {
		return
	}
	if in.ref != nil {
		in.ref.Clear()
	}
	in.ref = ref
	if ref != nil && in.player != nil {
		ref.Set(in.player)
	}
}
