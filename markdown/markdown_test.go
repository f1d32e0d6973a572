package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gubarz/mdhtml/block"
	"github.com/gubarz/mdhtml/htmlnode"
	"github.com/gubarz/mdhtml/inline"
)

const sample = `# Sample

This is **bold** and *italic* with ` + "`code`" + `.

## Links

See [the docs](https://example.com/docs) and ![a cat](cat.png).

- one
- two

1. first
2. second

> a quote
> over two lines

` + "```\nfunc main() {}\n```\n"

func parseFragment(t *testing.T, fragment string) []*html.Node {
	t.Helper()
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	require.NoError(t, err)
	return nodes
}

func TestToHTML(t *testing.T) {
	got, err := ToHTML("# Hi\n\nThis is **bold**.")
	require.NoError(t, err)
	assert.Equal(t, "<div><h1>Hi</h1><p>This is <b>bold</b>.</p></div>", got)
}

func TestToHTMLEmpty(t *testing.T) {
	got, err := ToHTML("")
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", got)
}

func TestToHTMLDeterministic(t *testing.T) {
	first, err := ToHTML(sample)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ToHTML(sample)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestToHTMLStructure(t *testing.T) {
	out, err := ToHTML(sample)
	require.NoError(t, err)

	nodes := parseFragment(t, out)
	require.Len(t, nodes, 1)
	root := nodes[0]
	assert.Equal(t, "div", root.Data)

	tests := []struct {
		selector string
		count    int
	}{
		{selector: "div > h1", count: 1},
		{selector: "div > h2", count: 1},
		{selector: "div > p", count: 2},
		{selector: "p > b", count: 1},
		{selector: "p > i", count: 1},
		{selector: "p > code", count: 1},
		{selector: `a[href="https://example.com/docs"]`, count: 1},
		{selector: `img[src="cat.png"][alt="a cat"]`, count: 1},
		{selector: "ul > li", count: 2},
		{selector: "ol > li", count: 2},
		{selector: "div > blockquote", count: 1},
		{selector: "pre > code", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			sel := cascadia.MustCompile(tt.selector)
			assert.Len(t, sel.MatchAll(root), tt.count)
		})
	}
}

func TestToHTMLOrderedAndQuoteText(t *testing.T) {
	out, err := ToHTML(sample)
	require.NoError(t, err)
	assert.Contains(t, out, "<blockquote>a quote over two lines</blockquote>")
	assert.Contains(t, out, "<ol><li>first</li><li>second</li></ol>")
	assert.Contains(t, out, "<pre><code>func main() {}\n</code></pre>")
}

func TestToHTMLUnbalanced(t *testing.T) {
	_, err := ToHTML("fine\n\n**broken")
	assert.ErrorIs(t, err, inline.ErrUnbalancedDelimiter)

	var blockErr *block.Error
	require.True(t, errors.As(err, &blockErr))
	assert.Equal(t, 2, blockErr.Index)
}

func TestToHTMLWithSkip(t *testing.T) {
	got, err := ToHTMLWith("**broken\n\nok", func(*block.Error) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, "<div><p>ok</p></div>", got)
}

func TestNodeToHTML(t *testing.T) {
	link := htmlnode.NewLeaf("a", "home", htmlnode.Attr{Key: "href", Value: "/"})
	nav, err := htmlnode.NewParent("nav", []htmlnode.Node{link}, htmlnode.Attr{Key: "class", Value: "top"})
	require.NoError(t, err)

	got, err := NodeToHTML(nav)
	require.NoError(t, err)
	assert.Equal(t, `<nav class="top"><a href="/">home</a></nav>`, got)

	_, err = NodeToHTML(&htmlnode.Parent{})
	assert.ErrorIs(t, err, htmlnode.ErrMissingTag)
}

func TestParseReturnsTree(t *testing.T) {
	root, err := Parse("# a\n\nb")
	require.NoError(t, err)
	kids := root.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "h1", kids[0].Tag())
	assert.Equal(t, "p", kids[1].Tag())
}
