// Package lottie defines the boundary between widgets and a Lottie playback
// engine, and ships a default in-process engine.
//
// An [Engine] turns a [Config] into a live [Player]. The widget host only
// talks to these two interfaces; [NewEngine] provides an implementation that
// decodes Lottie JSON and advances frames from the animation ticker.
package lottie

// Source identifies where an animation's data comes from. It is either a
// DataSource or a PathSource.
type Source interface {
	isSource()
}

// DataSource carries inline, already-parsed animation data. Two data
// sources are the same source only when they point at the same Animation.
type DataSource struct {
	Data *Animation
}

// PathSource references animation JSON by path. Two path sources are the
// same source when their paths are equal.
type PathSource struct {
	Path string
}

func (DataSource) isSource() {}
func (PathSource) isSource() {}

// FromData returns a DataSource for a.
func FromData(a *Animation) Source { return DataSource{Data: a} }

// FromPath returns a PathSource for path.
func FromPath(path string) Source { return PathSource{Path: path} }

// SameSource reports whether a and b name the same animation. Inline data
// is compared by pointer, paths by value; contents are never inspected.
func SameSource(a, b Source) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case DataSource:
		b, ok := b.(DataSource)
		return ok && a.Data == b.Data
	case PathSource:
		b, ok := b.(PathSource)
		return ok && a.Path == b.Path
	default:
		return false
	}
}

// Describe returns a short label for logs.
func Describe(s Source) string {
	switch s := s.(type) {
	case DataSource:
		if s.Data == nil {
			return "data:<nil>"
		}
		if s.Data.Name != "" {
			return "data:" + s.Data.Name
		}
		return "data"
	case PathSource:
		return "path:" + s.Path
	default:
		return "none"
	}
}
