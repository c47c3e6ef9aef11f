package lottie

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/drift-lottie/pkg/errors"
)

// Manifest is the YAML form of a Config, for apps that ship animation
// settings alongside their assets:
//
//	name: spinner
//	path: animations/spinner.json
//	renderer: canvas
//	loop: true
//	segment: [0, 30]
//
// Inline data may be given under "data" instead of "path"; Lottie JSON is
// valid YAML, so an exported animation can be pasted in as is.
type Manifest struct {
	Name     string         `yaml:"name,omitempty"`
	Path     string         `yaml:"path,omitempty"`
	Data     yaml.Node      `yaml:"data,omitempty"`
	Renderer Renderer       `yaml:"renderer,omitempty"`
	Loop     *bool          `yaml:"loop,omitempty"`
	Loops    int            `yaml:"loops,omitempty"`
	Autoplay *bool          `yaml:"autoplay,omitempty"`
	Segment  []float64      `yaml:"segment,omitempty"`
	Settings map[string]any `yaml:"rendererSettings,omitempty"`
}

// ParseManifest decodes a YAML manifest into a Config. The Container is
// left unset; the widget host supplies it.
func ParseManifest(data []byte) (Config, error) {
	const op = "lottie.ParseManifest"
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Config{}, &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
	}
	return m.Config()
}

// Config converts the manifest into a Config.
func (m Manifest) Config() (Config, error) {
	const op = "lottie.Manifest.Config"
	cfg := Config{
		Name:             m.Name,
		Renderer:         m.Renderer,
		Loop:             m.Loop,
		LoopCount:        m.Loops,
		Autoplay:         m.Autoplay,
		RendererSettings: m.Settings,
	}

	hasData := !m.Data.IsZero()
	switch {
	case hasData && m.Path != "":
		return Config{}, &errors.ConfigError{Op: op, Field: "Source", Err: fmt.Errorf("path and data are mutually exclusive")}
	case m.Path != "":
		cfg.Source = PathSource{Path: m.Path}
	case hasData:
		anim, err := decodeInline(&m.Data)
		if err != nil {
			return Config{}, &errors.ConfigError{Op: op, Field: "data", Err: err}
		}
		cfg.Source = DataSource{Data: anim}
	}

	if m.Segment != nil {
		if len(m.Segment) != 2 {
			return Config{}, &errors.ConfigError{Op: op, Field: "segment", Value: m.Segment, Err: fmt.Errorf("want 2 frames, got %d", len(m.Segment))}
		}
		seg := Segment{m.Segment[0], m.Segment[1]}
		cfg.InitialSegment = &seg
	}
	if cfg.Renderer != "" && !cfg.Renderer.Valid() {
		return Config{}, &errors.ConfigError{Op: op, Field: "renderer", Value: cfg.Renderer, Err: errors.ErrUnknownRenderer}
	}
	return cfg, nil
}

// decodeInline round-trips a YAML node through JSON so inline data gets the
// same decoding as a file.
func decodeInline(node *yaml.Node) (*Animation, error) {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return LoadBytes(buf)
}
