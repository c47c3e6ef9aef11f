package testing

import (
	"fmt"
	"slices"

	"github.com/go-drift/drift-lottie/pkg/errors"
	"github.com/go-drift/drift-lottie/pkg/lottie"
)

// RecordingEngine is a lottie.Engine whose players only record calls.
type RecordingEngine struct {
	// Err, when set, is returned by the next LoadAnimation instead of a player.
	Err error

	configs []lottie.Config
	players []*RecordingPlayer
	log     []string
}

var _ lottie.Engine = (*RecordingEngine)(nil)

// NewRecordingEngine returns an empty recording engine.
func NewRecordingEngine() *RecordingEngine {
	return &RecordingEngine{}
}

// LoadAnimation records cfg and returns a new RecordingPlayer.
func (e *RecordingEngine) LoadAnimation(cfg lottie.Config) (lottie.Player, error) {
	if err := e.Err; err != nil {
		e.Err = nil
		return nil, err
	}
	e.configs = append(e.configs, cfg)
	p := &RecordingPlayer{engine: e, index: len(e.players), Config: cfg}
	e.players = append(e.players, p)
	e.record(p, "create(%s)", lottie.Describe(cfg.Source))
	return p, nil
}

// Configs returns the configs passed to LoadAnimation, in order.
func (e *RecordingEngine) Configs() []lottie.Config {
	return slices.Clone(e.configs)
}

// Players returns every player created, destroyed or not.
func (e *RecordingEngine) Players() []*RecordingPlayer {
	return slices.Clone(e.players)
}

// Last returns the most recently created player, or nil.
func (e *RecordingEngine) Last() *RecordingPlayer {
	if len(e.players) == 0 {
		return nil
	}
	return e.players[len(e.players)-1]
}

// Live returns the players that have not been destroyed.
func (e *RecordingEngine) Live() []*RecordingPlayer {
	var out []*RecordingPlayer
	for _, p := range e.players {
		if !p.destroyed {
			out = append(out, p)
		}
	}
	return out
}

// Log returns every call across all players, prefixed with the player index
// (e.g. "0:play").
func (e *RecordingEngine) Log() []string {
	return slices.Clone(e.log)
}

// ResetLog clears the engine log and every player's call list.
func (e *RecordingEngine) ResetLog() {
	e.log = nil
	for _, p := range e.players {
		p.calls = nil
	}
}

func (e *RecordingEngine) record(p *RecordingPlayer, format string, args ...any) {
	call := fmt.Sprintf(format, args...)
	p.calls = append(p.calls, call)
	e.log = append(e.log, fmt.Sprintf("%d:%s", p.index, call))
}

// RecordingPlayer records the calls it receives. Calls after Destroy panic
// with a LifecycleError, like a real player.
type RecordingPlayer struct {
	Config lottie.Config

	engine     *RecordingEngine
	index      int
	calls      []string
	listeners  []lottie.EventListener
	added      int
	removed    int
	destroyed  bool
	destroyIDs []string
}

var _ lottie.Player = (*RecordingPlayer)(nil)

func (p *RecordingPlayer) guard(op string) {
	if p.destroyed {
		panic(&errors.LifecycleError{Op: "RecordingPlayer." + op, State: "destroyed", Err: errors.ErrDestroyed})
	}
}

func (p *RecordingPlayer) Destroy(id string) {
	p.guard("Destroy")
	p.destroyed = true
	p.destroyIDs = append(p.destroyIDs, id)
	p.engine.record(p, "destroy(%s)", id)
}

func (p *RecordingPlayer) Play() {
	p.guard("Play")
	p.engine.record(p, "play")
}

func (p *RecordingPlayer) PlaySegments(segments []lottie.Segment) {
	p.guard("PlaySegments")
	p.engine.record(p, "playSegments(%v)", segments)
}

func (p *RecordingPlayer) Pause() {
	p.guard("Pause")
	p.engine.record(p, "pause")
}

func (p *RecordingPlayer) Stop() {
	p.guard("Stop")
	p.engine.record(p, "stop")
}

func (p *RecordingPlayer) SetSpeed(speed float64) {
	p.guard("SetSpeed")
	p.engine.record(p, "setSpeed(%v)", speed)
}

func (p *RecordingPlayer) SetDirection(direction lottie.Direction) {
	p.guard("SetDirection")
	p.engine.record(p, "setDirection(%s)", direction)
}

func (p *RecordingPlayer) AddEventListener(name lottie.EventName, callback *lottie.Callback) {
	p.guard("AddEventListener")
	p.listeners = append(p.listeners, lottie.EventListener{Name: name, Callback: callback})
	p.added++
	p.engine.record(p, "add(%s)", name)
}

func (p *RecordingPlayer) RemoveEventListener(name lottie.EventName, callback *lottie.Callback) {
	p.guard("RemoveEventListener")
	idx := slices.Index(p.listeners, lottie.EventListener{Name: name, Callback: callback})
	if idx >= 0 {
		p.listeners = slices.Delete(p.listeners, idx, idx+1)
	}
	p.removed++
	p.engine.record(p, "remove(%s)", name)
}

// Emit delivers e to the registered listeners for e.Type.
func (p *RecordingPlayer) Emit(e lottie.Event) {
	for _, l := range slices.Clone(p.listeners) {
		if l.Name == e.Type {
			l.Callback.Invoke(e)
		}
	}
}

// Calls returns the calls this player received, in order.
func (p *RecordingPlayer) Calls() []string { return slices.Clone(p.calls) }

// Listeners returns the currently registered listeners.
func (p *RecordingPlayer) Listeners() []lottie.EventListener { return slices.Clone(p.listeners) }

// HasListener reports whether callback is registered for name.
func (p *RecordingPlayer) HasListener(name lottie.EventName, callback *lottie.Callback) bool {
	return slices.Contains(p.listeners, lottie.EventListener{Name: name, Callback: callback})
}

// AddCount returns the number of AddEventListener calls.
func (p *RecordingPlayer) AddCount() int { return p.added }

// RemoveCount returns the number of RemoveEventListener calls.
func (p *RecordingPlayer) RemoveCount() int { return p.removed }

// Destroyed reports whether Destroy has been called.
func (p *RecordingPlayer) Destroyed() bool { return p.destroyed }

// DestroyIDs returns the ids Destroy was called with.
func (p *RecordingPlayer) DestroyIDs() []string { return slices.Clone(p.destroyIDs) }
