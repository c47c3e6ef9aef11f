package lottie

import (
	"maps"

	"github.com/go-drift/drift-lottie/pkg/errors"
	"github.com/go-drift/drift-lottie/pkg/surface"
)

// Renderer selects how the engine draws into the container.
type Renderer string

const (
	RendererSVG    Renderer = "svg"
	RendererCanvas Renderer = "canvas"
	RendererHTML   Renderer = "html"
)

// Valid reports whether r is a renderer the engine understands.
func (r Renderer) Valid() bool {
	switch r {
	case RendererSVG, RendererCanvas, RendererHTML:
		return true
	}
	return false
}

// Config describes one animation to load.
//
// Pointer fields distinguish "unset" from the zero value so that [Merge]
// can layer caller config over defaults.
type Config struct {
	// Source is the animation data or path. Required.
	Source Source

	// Renderer defaults to RendererSVG.
	Renderer Renderer

	// Loop makes playback restart after the last frame. Defaults to false.
	Loop *bool

	// LoopCount limits the number of loops when Loop is set. Zero loops forever.
	LoopCount int

	// Autoplay starts playback as soon as the data is ready. Defaults to true.
	Autoplay *bool

	// Name labels the animation in the engine registry and in logs.
	Name string

	// RendererSettings is passed through to the renderer untouched.
	RendererSettings map[string]any

	// InitialSegment restricts playback to a frame range from the start.
	InitialSegment *Segment

	// Container is the surface the animation draws into. The widget host
	// sets it last; caller values are overwritten.
	Container surface.Attributes
}

// Bool returns a pointer to v, for Config.Loop and Config.Autoplay.
func Bool(v bool) *bool { return &v }

// DefaultConfig returns the engine defaults: svg renderer, no loop, autoplay.
func DefaultConfig() Config {
	return Config{
		Renderer: RendererSVG,
		Loop:     Bool(false),
		Autoplay: Bool(true),
	}
}

// Merge returns base with every field set in overlay copied over it.
func Merge(base, overlay Config) Config {
	out := base
	if overlay.Source != nil {
		out.Source = overlay.Source
	}
	if overlay.Renderer != "" {
		out.Renderer = overlay.Renderer
	}
	if overlay.Loop != nil {
		out.Loop = overlay.Loop
	}
	if overlay.LoopCount != 0 {
		out.LoopCount = overlay.LoopCount
	}
	if overlay.Autoplay != nil {
		out.Autoplay = overlay.Autoplay
	}
	if overlay.Name != "" {
		out.Name = overlay.Name
	}
	if overlay.RendererSettings != nil {
		out.RendererSettings = maps.Clone(overlay.RendererSettings)
	}
	if overlay.InitialSegment != nil {
		seg := *overlay.InitialSegment
		out.InitialSegment = &seg
	}
	if overlay.Container != nil {
		out.Container = overlay.Container
	}
	return out
}

// Looping reports whether the config asks for looped playback.
func (c Config) Looping() bool { return c.Loop != nil && *c.Loop }

// Autoplaying reports whether the config asks for autoplay. Unset means true.
func (c Config) Autoplaying() bool { return c.Autoplay == nil || *c.Autoplay }

// Validate checks the fields every engine needs.
func (c Config) Validate() error {
	const op = "lottie.Config.Validate"
	if c.Container == nil {
		return &errors.ConfigError{Op: op, Field: "Container", Err: errors.ErrNoContainer}
	}
	switch s := c.Source.(type) {
	case DataSource:
		if s.Data == nil {
			return &errors.ConfigError{Op: op, Field: "Source", Value: "data:<nil>", Err: errors.ErrNoSource}
		}
	case PathSource:
		if s.Path == "" {
			return &errors.ConfigError{Op: op, Field: "Source", Value: `path:""`, Err: errors.ErrNoSource}
		}
	default:
		return &errors.ConfigError{Op: op, Field: "Source", Err: errors.ErrNoSource}
	}
	renderer := c.Renderer
	if renderer == "" {
		renderer = RendererSVG
	}
	if !renderer.Valid() {
		return &errors.ConfigError{Op: op, Field: "Renderer", Value: c.Renderer, Err: errors.ErrUnknownRenderer}
	}
	if c.InitialSegment != nil {
		if err := c.InitialSegment.validate(); err != nil {
			return &errors.ConfigError{Op: op, Field: "InitialSegment", Value: *c.InitialSegment, Err: err}
		}
	}
	return nil
}
