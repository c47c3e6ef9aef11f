package lottie

import (
	"path/filepath"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/go-drift/drift-lottie/pkg/errors"
	"github.com/go-drift/drift-lottie/pkg/logging"
)

// Engine creates players from configs.
type Engine interface {
	// LoadAnimation creates a player bound to cfg.Container. An error means
	// the config was rejected and nothing was created.
	LoadAnimation(cfg Config) (Player, error)
}

// Player is a live, stateful animation bound to one container.
type Player interface {
	// Destroy releases the player. id is the identity the host stamped on
	// the container. No other method may be called afterwards.
	Destroy(id string)
	Play()
	PlaySegments(segments []Segment)
	Pause()
	Stop()
	SetSpeed(speed float64)
	SetDirection(direction Direction)
	AddEventListener(name EventName, callback *Callback)
	RemoveEventListener(name EventName, callback *Callback)
}

// Loader resolves a PathSource into animation data.
type Loader interface {
	Load(path string) (*Animation, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(path string) (*Animation, error)

// Load calls f(path).
func (f LoaderFunc) Load(path string) (*Animation, error) { return f(path) }

// FileLoader reads animation JSON from the file system, relative to Root.
type FileLoader struct {
	Root string
}

// Load reads and parses the file at Root/path.
func (l FileLoader) Load(path string) (*Animation, error) {
	if l.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.Root, path)
	}
	return LoadFile(path)
}

// EngineOption configures a DefaultEngine.
type EngineOption func(*DefaultEngine)

// WithLoader sets the loader used for path sources.
func WithLoader(l Loader) EngineOption {
	return func(e *DefaultEngine) { e.loader = l }
}

// WithLogger sets the engine logger. Defaults to logging.Named("lottie").
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *DefaultEngine) { e.log = l }
}

// DefaultEngine is the in-process engine. Players it creates are driven by
// animation.StepTickers.
type DefaultEngine struct {
	mu      sync.Mutex
	loader  Loader
	log     *zap.Logger
	players []*AnimationItem
}

// NewEngine returns a DefaultEngine reading paths from the working directory.
func NewEngine(opts ...EngineOption) *DefaultEngine {
	e := &DefaultEngine{loader: FileLoader{}}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logging.Named("lottie")
	}
	return e
}

// LoadAnimation validates cfg, resolves its source and returns a ready
// player. Autoplaying configs are already playing on return.
func (e *DefaultEngine) LoadAnimation(cfg Config) (Player, error) {
	cfg = Merge(DefaultConfig(), cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var data *Animation
	switch s := cfg.Source.(type) {
	case DataSource:
		data = s.Data
	case PathSource:
		loaded, err := e.loader.Load(s.Path)
		if err != nil {
			e.log.Warn("load failed", zap.String("path", s.Path), zap.Error(err))
			return nil, &errors.Error{Op: "lottie.LoadAnimation", Kind: errors.KindLoad, Err: err}
		}
		data = loaded
	}
	if err := data.validate(); err != nil {
		return nil, &errors.ConfigError{Op: "lottie.LoadAnimation", Field: "Source", Value: Describe(cfg.Source), Err: err}
	}

	item := newAnimationItem(e, cfg, data)
	e.mu.Lock()
	e.players = append(e.players, item)
	e.mu.Unlock()

	e.log.Debug("animation loaded",
		zap.String("name", cfg.Name),
		zap.String("source", Describe(cfg.Source)),
		zap.String("renderer", string(cfg.Renderer)),
	)
	item.start()
	return item, nil
}

// Players returns the live players in creation order.
func (e *DefaultEngine) Players() []*AnimationItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.players)
}

// Find returns the live players whose config name is name.
func (e *DefaultEngine) Find(name string) []*AnimationItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []*AnimationItem
	for _, p := range e.players {
		if p.cfg.Name == name {
			out = append(out, p)
		}
	}
	return out
}

func (e *DefaultEngine) unregister(item *AnimationItem, id string) {
	e.mu.Lock()
	e.players = slices.DeleteFunc(e.players, func(p *AnimationItem) bool { return p == item })
	e.mu.Unlock()
	e.log.Debug("animation destroyed", zap.String("id", id), zap.String("name", item.cfg.Name))
}
