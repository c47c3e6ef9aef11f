package widgets

import (
	"slices"

	"github.com/go-drift/drift-lottie/pkg/lottie"
)

// listenerRegistry remembers exactly which listeners were put on the live
// player, so they can be taken off again by the same callback handles even
// after the widget's Listeners prop has moved on.
type listenerRegistry struct {
	attached []lottie.EventListener
}

// attach registers every pair of set on p, in order and without dedup.
func (r *listenerRegistry) attach(p lottie.Player, set []lottie.EventListener) {
	for _, l := range set {
		p.AddEventListener(l.Name, l.Callback)
	}
	r.attached = slices.Clone(set)
}

// detach unregisters every pair previously attached, in order.
func (r *listenerRegistry) detach(p lottie.Player) {
	for _, l := range r.attached {
		p.RemoveEventListener(l.Name, l.Callback)
	}
	r.attached = nil
}

// matches reports whether set is the registered set, pair for pair.
func (r *listenerRegistry) matches(set []lottie.EventListener) bool {
	return slices.Equal(r.attached, set)
}
