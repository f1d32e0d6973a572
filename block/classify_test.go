package block

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		document string
		want     []string
	}{
		{name: "empty", document: "", want: nil},
		{name: "only blank lines", document: "\n\n\n\n", want: nil},
		{
			name: "paragraphs and list",
			document: `
This is **bolded** paragraph

This is another paragraph with _italic_ text and ` + "`code`" + ` here
This is the same paragraph on a new line

- This is a list
- with items
`,
			want: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
				"- This is a list\n- with items",
			},
		},
		{
			name:     "runs of blank lines",
			document: "a\n\n\n\nb",
			want:     []string{"a", "b"},
		},
		{
			name:     "blocks are trimmed",
			document: "   # Title   \n\n\n  text  ",
			want:     []string{"# Title", "text"},
		},
		{
			name:     "crlf line endings",
			document: "one\r\n\r\ntwo\r\nthree",
			want:     []string{"one", "two\nthree"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.document))
		})
	}
}

func TestClassify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdhtml.block")
	defer teardown()
	//
	tests := []struct {
		block string
		want  Type
	}{
		{block: "# h1", want: Heading},
		{block: "### Title", want: Heading},
		{block: "###### h6", want: Heading},
		{block: "####### x", want: Paragraph},
		{block: "#nospace", want: Paragraph},
		{block: "#  double space", want: Paragraph},
		{block: "```\ncode\n```", want: CodeFence},
		{block: "```\n```", want: CodeFence},
		{block: "```", want: Paragraph},
		{block: "```go\ncode\n```", want: Paragraph},
		{block: "> quote\n> more", want: Quote},
		{block: "> quote\nnot quote", want: Paragraph},
		{block: ">no space", want: Paragraph},
		{block: "- a\n- b", want: UnorderedList},
		{block: "- a\n  - b", want: UnorderedList},
		{block: "- a\n* b", want: Paragraph},
		{block: "1. a\n2. b\n3. c", want: OrderedList},
		{block: "1. only", want: OrderedList},
		{block: "2. only", want: Paragraph},
		{block: "1. a\n3. b", want: Paragraph},
		{block: "1. a\n2. b\n1. c", want: Paragraph},
		{block: "1.a", want: Paragraph},
		{block: "just some text", want: Paragraph},
	}

	for _, tt := range tests {
		t.Run(tt.block, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.block))
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	assert.Equal(t, 0, HeadingLevel("text"))
	assert.Equal(t, 1, HeadingLevel("# a"))
	assert.Equal(t, 3, HeadingLevel("### a"))
	assert.Equal(t, 7, HeadingLevel("####### a"))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "heading", Heading.String())
	assert.Equal(t, "ordered_list", OrderedList.String())
	assert.Equal(t, "Type(9)", Type(9).String())
}
