package htmlnode

import (
	"fmt"
	"strings"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list. Order is preserved in the output.
type Attrs []Attr

// HTML renders the attributes as ` k1="v1" k2="v2"`, or "" when there are
// none. Values are written as-is; quotes are not escaped.
func (a Attrs) HTML() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	return b.String()
}

func copyAttrs(attrs []Attr) Attrs {
	if len(attrs) == 0 {
		return nil
	}
	out := make(Attrs, len(attrs))
	copy(out, attrs)
	return out
}

// Render serializes a node and its descendants to HTML.
func Render(n Node) (string, error) {
	var b strings.Builder
	switch v := n.(type) {
	case *Leaf:
		if v == nil {
			return "", fmt.Errorf("%w: nil leaf", ErrInvalidNode)
		}
	case *Parent:
		if v == nil {
			return "", fmt.Errorf("%w: nil parent", ErrInvalidNode)
		}
	default:
		return "", fmt.Errorf("%w: unsupported node type %T", ErrInvalidNode, n)
	}
	if err := render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func render(b *strings.Builder, n Node) error {
	switch v := n.(type) {
	case *Leaf:
		return renderLeaf(b, v)
	case *Parent:
		return renderParent(b, v)
	}
	return fmt.Errorf("%w: unsupported node type %T", ErrInvalidNode, n)
}

func renderLeaf(b *strings.Builder, l *Leaf) error {
	if !l.hasValue {
		return fmt.Errorf("%w: <%s>", ErrMissingValue, l.tag)
	}
	if l.tag == "" {
		b.WriteString(l.value)
		return nil
	}
	openTag(b, l.tag, l.attrs)
	b.WriteString(l.value)
	closeTag(b, l.tag)
	return nil
}

func renderParent(b *strings.Builder, p *Parent) error {
	if p.tag == "" {
		return ErrMissingTag
	}
	if p.children == nil {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, p.tag)
	}
	openTag(b, p.tag, p.attrs)
	for i, child := range p.children {
		switch c := child.(type) {
		case *Leaf:
			if c == nil {
				return fmt.Errorf("%w: child %d of <%s> is nil", ErrInvalidChildren, i, p.tag)
			}
			if err := renderLeaf(b, c); err != nil {
				return err
			}
		case *Parent:
			if c == nil {
				return fmt.Errorf("%w: child %d of <%s> is nil", ErrInvalidChildren, i, p.tag)
			}
			if err := renderParent(b, c); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: child %d of <%s> has type %T", ErrInvalidChildren, i, p.tag, child)
		}
	}
	closeTag(b, p.tag)
	return nil
}

func openTag(b *strings.Builder, tag string, attrs Attrs) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(attrs.HTML())
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
