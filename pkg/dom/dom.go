// Package dom provides a small mutable element tree used to describe pages
// before they are rendered to HTML. It is deliberately minimal: elements,
// text, raw markup and fragments, with just enough traversal support for
// post-processing passes such as translation.
package dom

import "fmt"

// Kind identifies the type of a Node.
type Kind uint8

const (
	// KindElement is a regular element node with a tag, attributes and children
	KindElement Kind = iota
	// KindText is a text node; its content is escaped on render
	KindText
	// KindRaw is pre-rendered markup; its content is written verbatim on render
	KindRaw
	// KindFragment groups children without a wrapping element
	KindFragment
)

// Attrs holds the attributes of an element node.
type Attrs map[string]any

// Node is a single node in the element tree.
type Node struct {
	// Kind determines the type of this node
	Kind Kind

	// Tag is the element tag name (e.g. "div", "a")
	// Only used when Kind == KindElement
	Tag string

	// Attrs contains the attributes for this node
	Attrs Attrs

	// Kids contains child nodes
	Kids []*Node

	// Text holds the content for KindText and KindRaw nodes
	Text string
}

// El creates an element node.
func El(tag string, attrs Attrs, kids ...*Node) *Node {
	children := make([]*Node, 0, len(kids))
	for _, kid := range kids {
		if kid != nil {
			children = append(children, kid)
		}
	}

	return &Node{
		Kind:  KindElement,
		Tag:   tag,
		Attrs: attrs,
		Kids:  children,
	}
}

// Text creates a text node. Its content is HTML-escaped when rendered.
func Text(text string) *Node {
	return &Node{
		Kind: KindText,
		Text: text,
	}
}

// Textf creates a text node from a format string.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates a raw markup node. Its content is rendered verbatim, so it
// must only be used for markup from trusted authors.
func Raw(markup string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: markup,
	}
}

// Frag groups multiple nodes without introducing a wrapping element.
func Frag(kids ...*Node) *Node {
	children := make([]*Node, 0, len(kids))
	for _, kid := range kids {
		if kid != nil {
			children = append(children, kid)
		}
	}

	return &Node{
		Kind: KindFragment,
		Kids: children,
	}
}

// IsElement returns true if this is an element node.
func (n *Node) IsElement() bool {
	return n.Kind == KindElement
}

// Attr returns the named attribute as a string. The second return value
// reports whether the attribute is present.
func (n *Node) Attr(name string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	value, ok := n.Attrs[name]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", value), true
}

// SetAttr sets the named attribute, allocating the attribute map if needed.
func (n *Node) SetAttr(name string, value any) {
	if n.Attrs == nil {
		n.Attrs = make(Attrs)
	}
	n.Attrs[name] = value
}

// ReplaceChildren swaps out the node's children.
func (n *Node) ReplaceChildren(kids ...*Node) {
	children := make([]*Node, 0, len(kids))
	for _, kid := range kids {
		if kid != nil {
			children = append(children, kid)
		}
	}
	n.Kids = children
}

// Walk visits n and every descendant in document order. Returning false
// from the visitor stops the walk.
func (n *Node) Walk(visit func(*Node) bool) {
	n.walk(visit)
}

func (n *Node) walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, kid := range n.Kids {
		if !kid.walk(visit) {
			return false
		}
	}
	return true
}

// FindAll returns every element in the tree carrying the given attribute,
// in document order.
func (n *Node) FindAll(attr string) []*Node {
	var found []*Node
	n.Walk(func(node *Node) bool {
		if node.IsElement() {
			if _, ok := node.Attr(attr); ok {
				found = append(found, node)
			}
		}
		return true
	})
	return found
}

// InnerText concatenates the text content of the node and its descendants.
// Raw nodes contribute their markup string unmodified.
func (n *Node) InnerText() string {
	var out string
	n.Walk(func(node *Node) bool {
		if node.Kind == KindText || node.Kind == KindRaw {
			out += node.Text
		}
		return true
	})
	return out
}
