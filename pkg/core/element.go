package core

import (
	"reflect"
	"time"

	"github.com/go-drift/drift-lottie/pkg/errors"
)

// Widget is an immutable description of part of the UI.
type Widget interface {
	CreateElement() Element
	Key() any
}

// BuildContext is the handle widgets receive during build.
type BuildContext interface {
	Widget() Widget
	Depth() int
}

// Element is a widget instantiated at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
}

// StatefulWidget is a widget with mutable state that outlives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable part of a StatefulWidget.
type State interface {
	InitState()
	DidMount()
	Build(ctx BuildContext) Widget
	DidUpdateWidget(oldWidget StatefulWidget)
	Dispose()
}

// ErrorCapturer is implemented by states that contain panics raised while
// their child subtree mounts or updates. The failed subtree is unmounted,
// CaptureError is called, and the state is built once more to produce a
// fallback. Panics from the fallback propagate.
type ErrorCapturer interface {
	CaptureError(err *errors.PanicError)
}

// HostWidget owns a single host object for its mounted lifetime.
type HostWidget interface {
	Widget
	CreateHostObject(ctx BuildContext) any
	UpdateHostObject(ctx BuildContext, object any)
	ReleaseHostObject(object any)
}

type elementBase struct {
	widget     Widget
	parent     Element
	depth      int
	slot       any
	buildOwner *BuildOwner
	dirty      bool
	self       Element
	mounted    bool
}

func (e *elementBase) Widget() Widget {
	return e.widget
}

func (e *elementBase) Depth() int {
	return e.depth
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

func (e *elementBase) setSelf(self Element) {
	e.self = self
}

func (e *elementBase) setBuildOwner(owner *BuildOwner) {
	e.buildOwner = owner
}

func (e *elementBase) isMounted() bool {
	return e.mounted
}

func (e *elementBase) mountBase(parent Element, slot any) {
	e.parent = parent
	e.slot = slot
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
}

// StatefulElement hosts a StatefulWidget and its State.
type StatefulElement struct {
	elementBase
	child Element
	state State
}

func NewStatefulElement(widget StatefulWidget, owner *BuildOwner) *StatefulElement {
	element := &StatefulElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

func (e *StatefulElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	widget := e.widget.(StatefulWidget)
	e.state = widget.CreateState()
	if setter, ok := e.state.(interface{ setElement(*StatefulElement) }); ok {
		setter.setElement(e)
	}
	e.state.InitState()
	e.dirty = true
	e.RebuildIfNeeded()
	e.state.DidMount()
}

func (e *StatefulElement) Update(newWidget Widget) {
	oldWidget := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(oldWidget)
	e.MarkNeedsBuild()
	if e.buildOwner == nil {
		e.RebuildIfNeeded()
	}
}

func (e *StatefulElement) Unmount() {
	e.mounted = false
	if e.state != nil {
		e.state.Dispose()
	}
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	built := e.state.Build(e)
	if capturer, ok := e.state.(ErrorCapturer); ok {
		e.child = e.guardedUpdateChild(built, capturer)
		return
	}
	e.child = updateChild(e.child, built, e, e.buildOwner)
}

func (e *StatefulElement) guardedUpdateChild(built Widget, capturer ErrorCapturer) (child Element) {
	var mounting Element
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr := &errors.PanicError{
			Op:         "core.StatefulElement.RebuildIfNeeded",
			Value:      r,
			StackTrace: errors.CaptureStack(),
			Timestamp:  time.Now(),
		}
		errors.ReportPanic(perr)
		failed := mounting
		if failed == nil {
			failed = e.child
		}
		e.child = nil
		if failed != nil {
			unmountQuietly(failed)
		}
		capturer.CaptureError(perr)
		child = updateChild(nil, e.state.Build(e), e, e.buildOwner)
	}()

	if e.child != nil && built != nil && canUpdateWidget(e.child.Widget(), built) {
		e.child.Update(built)
		return e.child
	}
	if e.child != nil {
		old := e.child
		e.child = nil
		old.Unmount()
	}
	if built == nil {
		return nil
	}
	mounting = inflateWidget(built, e.buildOwner)
	mounting.Mount(e, nil)
	return mounting
}

// unmountQuietly unmounts a subtree that already failed, reporting rather
// than raising any further panic.
func unmountQuietly(element Element) {
	defer errors.Recover("core.unmountQuietly")
	element.Unmount()
}

func (e *StatefulElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// State returns the element's state. Nil before Mount.
func (e *StatefulElement) State() State {
	return e.state
}

// HostElement hosts a HostWidget and its host object.
type HostElement struct {
	elementBase
	object any
}

func NewHostElement(widget HostWidget, owner *BuildOwner) *HostElement {
	element := &HostElement{}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

func (e *HostElement) Mount(parent Element, slot any) {
	e.mountBase(parent, slot)
	e.object = e.widget.(HostWidget).CreateHostObject(e)
}

func (e *HostElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.widget.(HostWidget).UpdateHostObject(e, e.object)
}

func (e *HostElement) Unmount() {
	e.mounted = false
	if e.object != nil {
		e.widget.(HostWidget).ReleaseHostObject(e.object)
		e.object = nil
	}
}

func (e *HostElement) RebuildIfNeeded() {
	e.dirty = false
}

func (e *HostElement) VisitChildren(visitor func(Element) bool) {}

// HostObject returns the live host object, or nil when unmounted.
func (e *HostElement) HostObject() any {
	return e.object
}

// MountRoot inflates widget and mounts it as the root of a tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element != nil {
		element.Mount(nil, nil)
	}
	return element
}

// UpdateRoot reconciles the root element against a new widget. It returns
// the element now at the root, which is a fresh one when the widget type or
// key changed.
func UpdateRoot(existing Element, widget Widget, owner *BuildOwner) Element {
	return updateChild(existing, widget, nil, owner)
}

func updateChild(existing Element, widget Widget, parent Element, owner *BuildOwner) Element {
	if widget == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil && canUpdateWidget(existing.Widget(), widget) {
		existing.Update(widget)
		return existing
	}
	if existing != nil {
		existing.Unmount()
	}
	element := inflateWidget(widget, owner)
	element.Mount(parent, nil)
	return element
}

func canUpdateWidget(existing Widget, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	if reflect.TypeOf(existing) != reflect.TypeOf(next) {
		return false
	}
	return reflect.DeepEqual(existing.Key(), next.Key())
}

func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	if setter, ok := element.(interface{ setSelf(Element) }); ok {
		setter.setSelf(element)
	}
	return element
}
