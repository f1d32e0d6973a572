package htmlnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foreign satisfies Node by embedding but is not a node this package builds.
type foreign struct {
	*Leaf
}

func mustParent(t *testing.T, tag string, children []Node, attrs ...Attr) *Parent {
	t.Helper()
	p, err := NewParent(tag, children, attrs...)
	require.NoError(t, err)
	return p
}

func TestAttrsHTML(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		want  string
	}{
		{name: "nil", attrs: nil, want: ""},
		{name: "empty", attrs: Attrs{}, want: ""},
		{
			name:  "single",
			attrs: Attrs{{Key: "href", Value: "https://boot.dev"}},
			want:  ` href="https://boot.dev"`,
		},
		{
			name: "declaration order",
			attrs: Attrs{
				{Key: "href", Value: "https://www.google.com"},
				{Key: "target", Value: "_blank"},
				{Key: "title", Value: "Click Me!"},
			},
			want: ` href="https://www.google.com" target="_blank" title="Click Me!"`,
		},
		{
			name:  "quotes are not escaped",
			attrs: Attrs{{Key: "alt", Value: `say "hi"`}},
			want:  ` alt="say "hi""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attrs.HTML())
		})
	}
}

func TestRenderLeaf(t *testing.T) {
	tests := []struct {
		name string
		leaf *Leaf
		want string
	}{
		{name: "raw text", leaf: Text("hi"), want: "hi"},
		{name: "raw text is not escaped", leaf: Text("a < b & c"), want: "a < b & c"},
		{name: "tagged", leaf: NewLeaf("p", "Hello, world!"), want: "<p>Hello, world!</p>"},
		{
			name: "with attributes",
			leaf: NewLeaf("a", "Click me!", Attr{Key: "href", Value: "https://www.google.com"}),
			want: `<a href="https://www.google.com">Click me!</a>`,
		},
		{
			name: "raw text ignores attributes",
			leaf: NewLeaf("", "plain", Attr{Key: "class", Value: "x"}),
			want: "plain",
		},
		{
			name: "empty value is valid",
			leaf: NewLeaf("img", "", Attr{Key: "src", Value: "a.png"}, Attr{Key: "alt", Value: "a"}),
			want: `<img src="a.png" alt="a"></img>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.leaf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderLeafMissingValue(t *testing.T) {
	_, err := Render(&Leaf{tag: "p"})
	assert.ErrorIs(t, err, ErrMissingValue)
}

func TestRenderParent(t *testing.T) {
	p := mustParent(t, "p", []Node{
		NewLeaf("b", "Bold text"),
		Text("Normal text"),
		NewLeaf("i", "italic text"),
		Text("Normal text"),
	})
	got, err := Render(p)
	require.NoError(t, err)
	assert.Equal(t, "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>", got)
}

func TestRenderParentEmptyChildren(t *testing.T) {
	got, err := Render(mustParent(t, "div", []Node{}))
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", got)
}

func TestRenderNestedParents(t *testing.T) {
	inner := mustParent(t, "code", []Node{Text("x := 1\n")})
	outer := mustParent(t, "pre", []Node{inner}, Attr{Key: "class", Value: "go"})
	root := mustParent(t, "div", []Node{outer, NewLeaf("p", "after")})

	got, err := Render(root)
	require.NoError(t, err)
	assert.Equal(t, "<div><pre class=\"go\"><code>x := 1\n</code></pre><p>after</p></div>", got)
}

func TestRenderErrors(t *testing.T) {
	unset := mustParent(t, "div", nil)
	var nilLeaf *Leaf

	tests := []struct {
		name string
		node Node
		want error
	}{
		{name: "zero parent", node: &Parent{}, want: ErrMissingTag},
		{name: "nil children", node: unset, want: ErrMissingChildren},
		{
			name: "nested nil children",
			node: mustParent(t, "div", []Node{unset}),
			want: ErrMissingChildren,
		},
		{
			name: "foreign child",
			node: mustParent(t, "div", []Node{foreign{NewLeaf("b", "x")}}),
			want: ErrInvalidChildren,
		},
		{name: "foreign root", node: foreign{NewLeaf("b", "x")}, want: ErrInvalidNode},
		{name: "nil interface", node: nil, want: ErrInvalidNode},
		{name: "typed nil", node: nilLeaf, want: ErrInvalidNode},
		{
			name: "child missing value",
			node: mustParent(t, "p", []Node{Text("ok"), &Leaf{}}),
			want: ErrMissingValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.node)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewParentValidation(t *testing.T) {
	var nilParent *Parent

	_, err := NewParent("", []Node{})
	assert.ErrorIs(t, err, ErrInvalidNode)

	_, err = NewParent("div", []Node{Text("a"), nil})
	assert.ErrorIs(t, err, ErrInvalidNode)

	_, err = NewParent("div", []Node{nilParent})
	assert.ErrorIs(t, err, ErrInvalidNode)
}

func TestParentIsImmutable(t *testing.T) {
	children := []Node{Text("a")}
	attrs := []Attr{{Key: "id", Value: "x"}}
	p := mustParent(t, "div", children, attrs...)

	children[0] = Text("changed")
	attrs[0].Value = "changed"
	p.Children()[0] = Text("changed")
	p.Attrs()[0].Value = "changed"

	got, err := Render(p)
	require.NoError(t, err)
	assert.Equal(t, `<div id="x">a</div>`, got)
}

func TestAccessors(t *testing.T) {
	l := NewLeaf("a", "home", Attr{Key: "href", Value: "/"})
	assert.Equal(t, "a", l.Tag())
	assert.Equal(t, "home", l.Value())
	assert.Equal(t, Attrs{{Key: "href", Value: "/"}}, l.Attrs())

	p := mustParent(t, "ul", nil)
	assert.Equal(t, "ul", p.Tag())
	assert.Nil(t, p.Children())
	assert.Nil(t, p.Attrs())
}

func TestRenderIsDeterministic(t *testing.T) {
	p := mustParent(t, "p", []Node{
		NewLeaf("a", "x", Attr{Key: "href", Value: "u"}, Attr{Key: "title", Value: "t"}),
	})
	first, err := Render(p)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Render(p)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
