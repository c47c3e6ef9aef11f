package widgets

import (
	"github.com/go-drift/drift-lottie/pkg/errors"
	"github.com/go-drift/drift-lottie/pkg/lottie"
)

// playback is the declarative playback request derived from Lottie props.
type playback struct {
	state     lottie.PlayingState
	speed     float64
	direction lottie.Direction
	segments  []lottie.Segment
}

func (l Lottie) playback() playback {
	p := playback{
		state:     l.PlayingState,
		speed:     l.Speed,
		direction: l.Direction,
		segments:  l.Segments,
	}
	if p.state == "" {
		p.state = lottie.Playing
	}
	if p.speed == 0 {
		p.speed = 1
	}
	return p
}

// applyPlayback issues the control calls for want. It runs on every mount
// and update, whether or not the player was just recreated; the player's
// own rules decide what repeated calls mean.
func applyPlayback(p lottie.Player, want playback) {
	switch want.state {
	case lottie.Playing:
		if want.segments != nil {
			p.PlaySegments(want.segments)
		} else {
			p.Play()
		}
	case lottie.Paused:
		p.Pause()
	case lottie.Stopped:
		p.Stop()
	default:
		panic(&errors.ConfigError{
			Op:    "widgets.Lottie",
			Field: "PlayingState",
			Value: want.state,
			Err:   errors.ErrInvalidState,
		})
	}
	p.SetSpeed(want.speed)
	p.SetDirection(want.direction)
}
