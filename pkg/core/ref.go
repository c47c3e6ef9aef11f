package core

// Ref is a mutable slot that lets a widget publish an object it owns to
// whoever passed the Ref in. The zero value is empty and ready to use.
//
//	surfaceRef := &core.Ref[*surface.Node]{}
//	widgets.SurfaceView{Ref: surfaceRef}
//	// after mount: surfaceRef.Current()
type Ref[T any] struct {
	current T
	set     bool
}

// Current returns the published value, or the zero value when empty.
func (r *Ref[T]) Current() T {
	return r.current
}

// IsSet reports whether a value has been published.
func (r *Ref[T]) IsSet() bool {
	return r.set
}

// Set publishes v.
func (r *Ref[T]) Set(v T) {
	r.current = v
	r.set = true
}

// Clear empties the slot.
func (r *Ref[T]) Clear() {
	var zero T
	r.current = zero
	r.set = false
}
