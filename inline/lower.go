package inline

import (
	"errors"
	"fmt"

	"github.com/gubarz/mdhtml/htmlnode"
)

// ErrInvalidKind is returned when lowering a span of unknown kind.
var ErrInvalidKind = errors.New("invalid span kind")

// Lower converts a span to an HTML leaf.
func Lower(s Span) (htmlnode.Node, error) {
	switch s.Kind {
	case Plain:
		return htmlnode.Text(s.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Key: "href", Value: s.URL}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: s.URL},
			htmlnode.Attr{Key: "alt", Value: s.Text},
		), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidKind, s.Kind)
}

// ToNodes tokenizes text and lowers every span. The result is never nil, so
// it can be used directly as the children of a parent node.
func ToNodes(text string) ([]htmlnode.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := Lower(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
