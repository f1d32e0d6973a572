// Package pretty indents rendered HTML fragments for display.
//
// Elements that contain block-level children are broken over several lines;
// everything else, including the whole of a <pre> element, stays on one line.
// The fragment is re-serialized by golang.org/x/net/html, so text is escaped
// and void elements such as <img> lose their end tag.
package pretty

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Indent is the default indentation unit
const Indent = "  "

var blockElements = map[atom.Atom]bool{
	atom.Div:        true,
	atom.P:          true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Pre:        true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Li:         true,
	atom.Blockquote: true,
}

// Format indents an HTML fragment using Indent
func Format(fragment string) (string, error) {
	return FormatWith(fragment, Indent)
}

// FormatWith indents an HTML fragment using the given indentation unit
func FormatWith(fragment, indent string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		if err := write(&b, n, indent, 0); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func write(b *strings.Builder, n *html.Node, indent string, depth int) error {
	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return nil
		}
		b.WriteString(strings.Repeat(indent, depth))
		b.WriteString(html.EscapeString(text))
		b.WriteByte('\n')
		return nil
	case html.ElementNode:
	default:
		return nil
	}

	b.WriteString(strings.Repeat(indent, depth))
	if n.DataAtom == atom.Pre || !hasBlockChild(n) {
		if err := html.Render(b, n); err != nil {
			return err
		}
		b.WriteByte('\n')
		return nil
	}

	// Render an empty copy to get the start tag with its attributes.
	shallow := &html.Node{Type: n.Type, Data: n.Data, DataAtom: n.DataAtom, Attr: n.Attr}
	var open strings.Builder
	if err := html.Render(&open, shallow); err != nil {
		return err
	}
	tag := open.String()
	b.WriteString(strings.TrimSuffix(tag, "</"+n.Data+">"))
	b.WriteByte('\n')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := write(b, c, indent, depth+1); err != nil {
			return err
		}
	}
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteString("</" + n.Data + ">\n")
	return nil
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockElements[c.DataAtom] {
			return true
		}
	}
	return false
}
