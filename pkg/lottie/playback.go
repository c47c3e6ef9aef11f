package lottie

import (
	"fmt"

	"github.com/go-drift/drift-lottie/pkg/errors"
)

// PlayingState is the desired playback state of a hosted animation.
type PlayingState string

const (
	Playing PlayingState = "playing"
	Paused  PlayingState = "paused"
	Stopped PlayingState = "stopped"
)

// ParsePlayingState validates s. Unknown values are rejected rather than
// defaulted.
func ParsePlayingState(s string) (PlayingState, error) {
	switch ps := PlayingState(s); ps {
	case Playing, Paused, Stopped:
		return ps, nil
	default:
		return "", &errors.ConfigError{Op: "lottie.ParsePlayingState", Field: "PlayingState", Value: s, Err: errors.ErrInvalidState}
	}
}

// Direction is the playback direction. The zero value leaves the choice to
// the engine, which plays forward.
type Direction int

const (
	DirectionUnset Direction = 0
	Forward        Direction = 1
	Reverse        Direction = -1
)

func (d Direction) String() string {
	switch d {
	case DirectionUnset:
		return "unset"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// sign maps a direction onto the frame step sign.
func (d Direction) sign() float64 {
	if d < 0 {
		return -1
	}
	return 1
}

// Segment is a frame range [first, last] in absolute frames.
type Segment [2]float64

// First returns the lower frame of the segment.
func (s Segment) First() float64 { return min(s[0], s[1]) }

// Last returns the upper frame of the segment.
func (s Segment) Last() float64 { return max(s[0], s[1]) }

// Frames returns the length of the segment in frames.
func (s Segment) Frames() float64 { return s.Last() - s.First() }

func (s Segment) validate() error {
	if s.Frames() <= 0 {
		return fmt.Errorf("segment %v is empty", [2]float64(s))
	}
	return nil
}
