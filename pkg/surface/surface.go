// Package surface models the drawable region a host allocates for a widget.
//
// A [Node] is owned by the host element that created it. Widgets that only
// need to tag the surface depend on the narrow [Attributes] capability.
package surface

import (
	"maps"
	"slices"
)

// DefaultExtent is the width and height a node takes when none is given.
const DefaultExtent = "100%"

// Attributes is the capability to read and write string attributes on a
// foreign surface.
type Attributes interface {
	Attribute(key string) (string, bool)
	SetAttribute(key, value string)
	RemoveAttribute(key string)
}

// Presentation is the sizing and styling passthrough applied to a node.
type Presentation struct {
	Width  string
	Height string
	Class  string
	// Style entries are applied after Width and Height, so a "width" or
	// "height" key here wins.
	Style map[string]string
}

// Node is a single empty drawable region.
type Node struct {
	attrs    map[string]string
	class    string
	style    map[string]string
	attached bool
}

// NewNode allocates a detached node with default extents.
func NewNode() *Node {
	n := &Node{attrs: make(map[string]string)}
	n.ApplyPresentation(Presentation{})
	return n
}

// Attribute returns the value stored under key.
func (n *Node) Attribute(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttribute stores value under key.
func (n *Node) SetAttribute(key, value string) {
	n.attrs[key] = value
}

// RemoveAttribute deletes key. Missing keys are ignored.
func (n *Node) RemoveAttribute(key string) {
	delete(n.attrs, key)
}

// AttributeKeys returns the attribute keys in sorted order.
func (n *Node) AttributeKeys() []string {
	return slices.Sorted(maps.Keys(n.attrs))
}

// ApplyPresentation replaces the node's class and computed style.
func (n *Node) ApplyPresentation(p Presentation) {
	width, height := p.Width, p.Height
	if width == "" {
		width = DefaultExtent
	}
	if height == "" {
		height = DefaultExtent
	}
	style := map[string]string{"width": width, "height": height}
	maps.Copy(style, p.Style)
	n.style = style
	n.class = p.Class
}

// Style returns the computed style value for property.
func (n *Node) Style(property string) string {
	return n.style[property]
}

// Class returns the node's class name.
func (n *Node) Class() string {
	return n.class
}

// Attach marks the node as part of the live tree.
func (n *Node) Attach() { n.attached = true }

// Detach marks the node as removed from the live tree. Attributes are kept
// so late readers can still inspect them.
func (n *Node) Detach() { n.attached = false }

// Attached reports whether the node is part of the live tree.
func (n *Node) Attached() bool { return n.attached }
