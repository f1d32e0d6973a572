// Package htmlnode provides the HTML node tree built by the Markdown parsers
// and its serialization to HTML text.
//
// A tree is made of two node kinds: a Leaf carries a text value and no
// children, a Parent carries children and no text of its own. Nodes are
// immutable once constructed.
package htmlnode

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNode is returned for a node that is not a valid tree member.
	ErrInvalidNode = errors.New("invalid node")
	// ErrMissingTag is returned when rendering a parent without a tag.
	ErrMissingTag = errors.New("parent node has no tag")
	// ErrMissingChildren is returned when rendering a parent whose children
	// were never set. An empty child list is valid.
	ErrMissingChildren = errors.New("parent node has no children")
	// ErrInvalidChildren is returned when a parent holds a child this package
	// cannot render.
	ErrInvalidChildren = errors.New("parent node has invalid children")
	// ErrMissingValue is returned when rendering a leaf without a value.
	ErrMissingValue = errors.New("leaf node has no value")
)

// Node is an element of an HTML tree. It is implemented by *Leaf and *Parent.
type Node interface {
	// Tag returns the element name, or "" for a raw text leaf.
	Tag() string
	// Attrs returns the node's attributes in declaration order.
	Attrs() Attrs

	node()
}

// Leaf is a node with a text value and no children.
type Leaf struct {
	tag      string
	value    string
	hasValue bool
	attrs    Attrs
}

// NewLeaf creates a leaf element. An empty tag makes a raw text leaf.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{
		tag:      tag,
		value:    value,
		hasValue: true,
		attrs:    copyAttrs(attrs),
	}
}

// Text creates a raw text leaf that renders as value with no wrapping element.
func Text(value string) *Leaf {
	return NewLeaf("", value)
}

func (l *Leaf) Tag() string   { return l.tag }
func (l *Leaf) Attrs() Attrs  { return copyAttrs(l.attrs) }
func (l *Leaf) Value() string { return l.value }
func (l *Leaf) node()         {}

func (l *Leaf) String() string {
	return fmt.Sprintf("Leaf(%q, %q, %v)", l.tag, l.value, l.attrs)
}

// Parent is a node with an ordered list of children.
type Parent struct {
	tag      string
	children []Node
	attrs    Attrs
}

// NewParent creates a parent element. A nil children slice leaves the
// children unset, which renders as ErrMissingChildren; pass an empty slice
// for an empty element.
func NewParent(tag string, children []Node, attrs ...Attr) (*Parent, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: parent requires a tag", ErrInvalidNode)
	}
	var kids []Node
	if children != nil {
		kids = make([]Node, len(children))
		for i, child := range children {
			if isNil(child) {
				return nil, fmt.Errorf("%w: child %d of <%s> is nil", ErrInvalidNode, i, tag)
			}
			kids[i] = child
		}
	}
	return &Parent{
		tag:      tag,
		children: kids,
		attrs:    copyAttrs(attrs),
	}, nil
}

func (p *Parent) Tag() string  { return p.tag }
func (p *Parent) Attrs() Attrs { return copyAttrs(p.attrs) }
func (p *Parent) node()        {}

// Children returns a copy of the child list. The result is nil when the
// children were never set.
func (p *Parent) Children() []Node {
	if p.children == nil {
		return nil
	}
	kids := make([]Node, len(p.children))
	copy(kids, p.children)
	return kids
}

func (p *Parent) String() string {
	return fmt.Sprintf("Parent(%q, %d children, %v)", p.tag, len(p.children), p.attrs)
}

func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Parent:
		return v == nil
	}
	return false
}
