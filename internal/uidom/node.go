// Package uidom models the widget tree the wallet shell renders: a small
// document-like tree with named elements, attribute bags, encapsulated shadow
// sub-trees and inert template content. The mutation surface (SetText,
// AppendChild, Remove) is deliberately narrow so the localization and dialog
// machinery works against any tree, including test fakes.
package uidom

// Well-known element kinds.
const (
	KindDocument = "document"
	KindTemplate = "template"
	KindShadow   = "shadow-root"
	KindDialog   = "dialog"
	KindLink     = "link"
	KindText     = "text"
)

// Node is a single element in the widget tree.
//
// Shadow roots and template content are separate query scopes: they are
// reachable only through their root link, never as ordinary children.
type Node struct {
	Kind string
	Name string
	Text string

	// OnActivate fires when the element is activated (a link followed, a
	// button pressed). Nil means the element is inert.
	OnActivate func()

	attrs    map[string]string
	parent   *Node
	children []*Node
	shadow   *Node
	content  *Node
}

// New returns a detached node of the given kind.
func New(kind string) *Node {
	return &Node{Kind: kind}
}

// NewText returns a detached text node with the given content.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Parent returns the node's parent, nil for detached nodes and roots.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's ordinary children in document order. The
// returned slice is a copy; mutating it does not affect the tree.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FirstChild returns the first ordinary child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// AppendChild attaches c as the last child of n, detaching it from any
// previous parent first. Appending nil is a no-op.
func (n *Node) AppendChild(c *Node) {
	if c == nil {
		return
	}
	c.Remove()
	c.parent = n
	n.children = append(n.children, c)
}

// Remove detaches n from its parent. Detached nodes are a no-op.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// SetText replaces the node's displayed text.
func (n *Node) SetText(s string) { n.Text = s }

// SetAttr sets a metadata attribute on the node.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// Attr returns the attribute value and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// DelAttr removes an attribute if present.
func (n *Node) DelAttr(key string) {
	delete(n.attrs, key)
}

// AttachShadow creates (or returns the existing) encapsulated sub-root of n.
// The shadow tree is invisible to plain child traversal and is discovered
// only by QueryDeep.
func (n *Node) AttachShadow() *Node {
	if n.shadow == nil {
		n.shadow = &Node{Kind: KindShadow}
	}
	return n.shadow
}

// ShadowRoot returns the node's shadow root, nil if none was attached.
func (n *Node) ShadowRoot() *Node { return n.shadow }

// Content returns a template's inert content root, creating it on first use.
// Returns nil for non-template nodes.
func (n *Node) Content() *Node {
	if n.Kind != KindTemplate {
		return nil
	}
	if n.content == nil {
		n.content = &Node{Kind: KindShadow}
	}
	return n.content
}

// CloneDeep returns a deep copy of n and everything below it, including
// shadow trees and template content. The clone is detached and carries no
// activation handlers: clones are structure, not live state.
func (n *Node) CloneDeep() *Node {
	c := &Node{
		Kind: n.Kind,
		Name: n.Name,
		Text: n.Text,
	}
	if len(n.attrs) > 0 {
		c.attrs = make(map[string]string, len(n.attrs))
		for k, v := range n.attrs {
			c.attrs[k] = v
		}
	}
	for _, child := range n.children {
		c.AppendChild(child.CloneDeep())
	}
	if n.shadow != nil {
		c.shadow = n.shadow.CloneDeep()
	}
	if n.content != nil {
		c.content = n.content.CloneDeep()
	}
	return c
}
