package block

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gubarz/mdhtml/htmlnode"
	"github.com/gubarz/mdhtml/inline"
)

var (
	// ErrInvalidHeading is returned when a heading marker leaves no content.
	ErrInvalidHeading = errors.New("invalid heading")
	// ErrInvalidBlockType is returned when a block cannot be built as the
	// requested type.
	ErrInvalidBlockType = errors.New("invalid block type")
)

// Build lowers a block to an HTML subtree according to its type, which is
// normally the result of Classify.
func Build(block string, t Type) (htmlnode.Node, error) {
	switch t {
	case Paragraph:
		return buildParagraph(block)
	case Heading:
		return buildHeading(block)
	case CodeFence:
		return buildCodeFence(block)
	case Quote:
		return buildQuote(block)
	case UnorderedList:
		return buildUnorderedList(block)
	case OrderedList:
		return buildOrderedList(block)
	}
	return nil, fmt.Errorf("%w: %s", ErrInvalidBlockType, t)
}

func buildParagraph(block string) (htmlnode.Node, error) {
	text := strings.Join(strings.Split(block, "\n"), " ")
	return inlineParent("p", text)
}

func buildHeading(block string) (htmlnode.Node, error) {
	level := HeadingLevel(block)
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("%w: level %d in %q", ErrInvalidHeading, level, block)
	}
	start := level + 1
	if start >= len(block) {
		return nil, fmt.Errorf("%w: no content in %q", ErrInvalidHeading, block)
	}
	return inlineParent(fmt.Sprintf("h%d", level), block[start:])
}

// buildCodeFence keeps the fence interior verbatim. The opening fence and
// its newline are cut from the front, the closing fence from the back.
func buildCodeFence(block string) (htmlnode.Node, error) {
	if len(block) < 2*len(fence)+1 || !strings.HasPrefix(block, fence+"\n") || !strings.HasSuffix(block, fence) {
		return nil, fmt.Errorf("%w: %q is not a fenced code block", ErrInvalidBlockType, block)
	}
	body := block[len(fence)+1 : len(block)-len(fence)]
	code, err := htmlnode.NewParent("code", []htmlnode.Node{htmlnode.Text(body)})
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("pre", []htmlnode.Node{code})
}

func buildQuote(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimLeft(strings.TrimSpace(line), ">")
		stripped = append(stripped, strings.TrimSpace(line))
	}
	return inlineParent("blockquote", strings.Join(stripped, " "))
}

func buildUnorderedList(block string) (htmlnode.Node, error) {
	return buildList("ul", block, func(int) string { return bulletMarker })
}

func buildOrderedList(block string) (htmlnode.Node, error) {
	return buildList("ol", block, func(i int) string { return orderedMarker(i + 1) })
}

// buildList strips the marker for line i from each line and builds one li
// per line under tag.
func buildList(tag, block string, marker func(i int) string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		text := strings.TrimPrefix(strings.TrimSpace(line), marker(i))
		li, err := inlineParent("li", text)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return htmlnode.NewParent(tag, items)
}

func inlineParent(tag, text string) (htmlnode.Node, error) {
	children, err := inline.ToNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children)
}
