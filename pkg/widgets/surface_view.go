package widgets

import (
	"github.com/go-drift/drift-lottie/pkg/core"
	"github.com/go-drift/drift-lottie/pkg/surface"
)

// SurfaceView allocates one empty [surface.Node] for its mounted lifetime
// and applies sizing and style to it on every rebuild.
//
// The node is published through Ref on mount and cleared on unmount:
//
//	ref := &core.Ref[*surface.Node]{}
//	widgets.SurfaceView{Width: "200px", Height: "200px", Ref: ref}
type SurfaceView struct {
	// Width and Height are CSS-like extents. Empty means 100%.
	Width  string
	Height string
	// Class is passed through to the node.
	Class string
	// Style entries override Width and Height.
	Style map[string]string
	// Ref receives the node while mounted.
	Ref *core.Ref[*surface.Node]
}

func (v SurfaceView) CreateElement() core.Element {
	return core.NewHostElement(v, nil)
}

func (v SurfaceView) Key() any {
	return nil
}

func (v SurfaceView) presentation() surface.Presentation {
	return surface.Presentation{
		Width:  v.Width,
		Height: v.Height,
		Class:  v.Class,
		Style:  v.Style,
	}
}

func (v SurfaceView) CreateHostObject(ctx core.BuildContext) any {
	node := surface.NewNode()
	node.ApplyPresentation(v.presentation())
	node.Attach()
	if v.Ref != nil {
		v.Ref.Set(node)
	}
	return node
}

func (v SurfaceView) UpdateHostObject(ctx core.BuildContext, object any) {
	node := object.(*surface.Node)
	node.ApplyPresentation(v.presentation())
	if v.Ref != nil && v.Ref.Current() != node {
		v.Ref.Set(node)
	}
}

func (v SurfaceView) ReleaseHostObject(object any) {
	object.(*surface.Node).Detach()
	if v.Ref != nil {
		v.Ref.Clear()
	}
}
