package testing

import (
	"testing"

	"github.com/go-drift/drift-lottie/pkg/core"
	"github.com/go-drift/drift-lottie/pkg/surface"
)

// WidgetTester mounts a single root widget and drives its lifecycle
// synchronously. Each Mount/Update/Unmount completes before returning, the
// way the host serializes lifecycle callbacks.
type WidgetTester struct {
	owner   *core.BuildOwner
	root    core.Element
	clock   *FakeClock
	restore func()
}

// NewWidgetTester creates a tester with a fresh FakeClock installed.
// Call Cleanup when done, or use NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	return &WidgetTester{
		owner:   core.NewBuildOwner(),
		clock:   clk,
		restore: clk.Install(),
	}
}

// NewWidgetTesterWithT creates a tester that cleans up when t finishes.
func NewWidgetTesterWithT(t testing.TB) *WidgetTester {
	t.Helper()
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Clock returns the tester's fake clock.
func (w *WidgetTester) Clock() *FakeClock { return w.clock }

// Mount mounts widget as the root, replacing any previous root.
func (w *WidgetTester) Mount(widget core.Widget) core.Element {
	if w.root != nil {
		w.root.Unmount()
	}
	w.root = core.MountRoot(widget, w.owner)
	w.owner.FlushBuild()
	return w.root
}

// Update reconciles the root against widget and flushes the rebuild.
func (w *WidgetTester) Update(widget core.Widget) core.Element {
	w.root = core.UpdateRoot(w.root, widget, w.owner)
	w.owner.FlushBuild()
	return w.root
}

// Pump flushes pending rebuilds, such as those scheduled by SetState.
func (w *WidgetTester) Pump() {
	w.owner.FlushBuild()
}

// Unmount tears down the root.
func (w *WidgetTester) Unmount() {
	if w.root == nil {
		return
	}
	w.root.Unmount()
	w.root = nil
}

// Root returns the root element, or nil when nothing is mounted.
func (w *WidgetTester) Root() core.Element { return w.root }

// State returns the root's state when the root is a StatefulElement.
func (w *WidgetTester) State() core.State {
	if se, ok := w.root.(*core.StatefulElement); ok {
		return se.State()
	}
	return nil
}

// Surface returns the first surface.Node hosted under the root.
func (w *WidgetTester) Surface() *surface.Node {
	var found *surface.Node
	var visit func(core.Element) bool
	visit = func(e core.Element) bool {
		if found != nil {
			return false
		}
		if he, ok := e.(*core.HostElement); ok {
			if node, ok := he.HostObject().(*surface.Node); ok {
				found = node
				return false
			}
		}
		e.VisitChildren(visit)
		return true
	}
	if w.root != nil {
		visit(w.root)
	}
	return found
}

// Cleanup unmounts the tree and restores the animation clock.
func (w *WidgetTester) Cleanup() {
	w.Unmount()
	if w.restore != nil {
		w.restore()
		w.restore = nil
	}
}
