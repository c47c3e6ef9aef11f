package lottie

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-drift/drift-lottie/pkg/errors"
)

// Animation is parsed Lottie JSON. Only the timing and sizing header is
// decoded; layers are kept raw for the renderer.
type Animation struct {
	Version   string            `json:"v"`
	Name      string            `json:"nm"`
	FrameRate float64           `json:"fr"`
	InPoint   float64           `json:"ip"`
	OutPoint  float64           `json:"op"`
	Width     float64           `json:"w"`
	Height    float64           `json:"h"`
	Layers    []json.RawMessage `json:"layers"`
	Markers   []Marker          `json:"markers,omitempty"`
}

// Marker is a named frame range inside an animation.
type Marker struct {
	Name      string  `json:"cm"`
	StartTime float64 `json:"tm"`
	Duration  float64 `json:"dr"`
}

// Segment returns the marker's frame range.
func (m Marker) Segment() Segment {
	return Segment{m.StartTime, m.StartTime + m.Duration}
}

// Load parses a Lottie animation from the provided reader.
func Load(r io.Reader) (*Animation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &errors.Error{Op: "lottie.Load", Kind: errors.KindLoad, Err: err}
	}
	return LoadBytes(data)
}

// LoadBytes parses a Lottie animation from byte data.
func LoadBytes(data []byte) (*Animation, error) {
	var a Animation
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, &errors.Error{Op: "lottie.LoadBytes", Kind: errors.KindLoad, Err: err}
	}
	if err := a.validate(); err != nil {
		return nil, &errors.Error{Op: "lottie.LoadBytes", Kind: errors.KindLoad, Err: err}
	}
	return &a, nil
}

// LoadFile parses a Lottie animation from a file path.
func LoadFile(path string) (*Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.Error{Op: "lottie.LoadFile", Kind: errors.KindLoad, Err: err}
	}
	defer f.Close()
	return Load(f)
}

func (a *Animation) validate() error {
	if a.FrameRate <= 0 {
		return fmt.Errorf("frame rate %v must be positive", a.FrameRate)
	}
	if a.OutPoint <= a.InPoint {
		return fmt.Errorf("out point %v must follow in point %v", a.OutPoint, a.InPoint)
	}
	return nil
}

// TotalFrames returns the number of frames between the in and out points.
func (a *Animation) TotalFrames() float64 {
	return a.OutPoint - a.InPoint
}

// Duration returns the total duration of the animation at its frame rate.
func (a *Animation) Duration() time.Duration {
	if a.FrameRate <= 0 {
		return 0
	}
	return time.Duration(a.TotalFrames() / a.FrameRate * float64(time.Second))
}

// Marker returns the marker named name.
func (a *Animation) Marker(name string) (Marker, bool) {
	for _, m := range a.Markers {
		if m.Name == name {
			return m, true
		}
	}
	return Marker{}, false
}
