// Package vdom models a view as a tree of typed node descriptors. A render
// function builds the tree; a Renderer turns it into terminal text; Activate
// delivers user events to the control that owns them.
package vdom

// Node is one element of a view tree.
type Node struct {
	Kind       string            // element kind, e.g. "header", "p", "button", "div"
	Attrs      map[string]string // attributes; "id" makes a node addressable
	Text       string            // text content, if any
	Children   []*Node           // child nodes
	OnActivate func()            // handler for activation events, controls only
}

// NewNode creates a Node. Nil attrs are allowed.
func NewNode(kind string, attrs map[string]string, text string, children ...*Node) *Node {
	return &Node{Kind: kind, Attrs: attrs, Text: text, Children: children}
}

// ID returns the node's id attribute, or "" when it has none.
func (n *Node) ID() string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs["id"]
}

// Div creates a container node with the given children.
func Div(attrs map[string]string, children ...*Node) *Node {
	return NewNode("div", attrs, "", children...)
}

// Paragraph creates a text node.
func Paragraph(text string, attrs map[string]string) *Node {
	return NewNode("p", attrs, text)
}

// Header creates a banner node displaying title.
func Header(title string, attrs map[string]string) *Node {
	return NewNode("header", attrs, title)
}

// Button creates an activatable control with the given label and handler.
func Button(label string, attrs map[string]string, onActivate func()) *Node {
	n := NewNode("button", attrs, label)
	n.OnActivate = onActivate
	return n
}

// Find returns the first node in depth-first order whose id attribute equals
// id, or nil when no node matches.
func Find(root *Node, id string) *Node {
	if root == nil || id == "" {
		return nil
	}
	if root.ID() == id {
		return root
	}
	for _, c := range root.Children {
		if n := Find(c, id); n != nil {
			return n
		}
	}
	return nil
}

// Activate delivers an activation event to the node with the given id and
// reports whether a handler ran. A missing node, or a node without a handler,
// is a no-op: activation never fails.
func Activate(root *Node, id string) bool {
	n := Find(root, id)
	if n == nil || n.OnActivate == nil {
		return false
	}
	n.OnActivate()
	return true
}
