// Package core provides the widget and element framework interfaces and lifecycle.
//
// Widgets are immutable descriptions of part of the UI. Elements are the
// instantiation of a widget at a location in the tree; they own identity and
// lifecycle across rebuilds.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    player lottie.Player
//	}
//
//	func (s *myState) DidMount() {
//	    // host objects built by the first Build are available here
//	}
//
// # Lifecycle
//
// A StatefulElement drives its State through a strict sequence:
//
//	Mount:   CreateState → InitState → Build → DidMount
//	Update:  DidUpdateWidget(old) → Build
//	Unmount: Dispose → child unmount
//
// Dispose runs before the child subtree is torn down, so host objects the
// state referenced are still reachable during cleanup. All callbacks run
// synchronously on the UI thread; the framework never interleaves them.
//
// # Host Objects
//
// HostWidget is the leaf of the tree: its element creates one host object
// (such as a surface.Node) on mount, updates it on rebuild, and releases it
// on unmount. Use a Ref to hand the object to an ancestor state.
package core
