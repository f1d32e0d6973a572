// Package markdown renders Markdown documents to HTML fragments.
//
// It is the entry point for callers that only need text in and text out:
//
//	html, err := markdown.ToHTML("# Hi\n\nThis is **bold**.")
//	// <div><h1>Hi</h1><p>This is <b>bold</b>.</p></div>
//
// Callers that build nodes themselves render them with NodeToHTML.
package markdown

import (
	"github.com/gubarz/mdhtml/block"
	"github.com/gubarz/mdhtml/htmlnode"
)

// ToHTML renders a document as one <div> element holding a child element
// per block.
func ToHTML(document string) (string, error) {
	root, err := Parse(document)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root)
}

// ToHTMLWith is ToHTML with a handler for blocks that fail to build.
func ToHTMLWith(document string, handler block.ErrorHandler) (string, error) {
	root, err := ParseWith(document, handler)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root)
}

// NodeToHTML renders a node tree.
func NodeToHTML(n htmlnode.Node) (string, error) {
	return htmlnode.Render(n)
}

// Parse returns the node tree of a document without rendering it.
func Parse(document string) (*htmlnode.Parent, error) {
	return block.ParseDocument(document)
}

// ParseWith is Parse with a handler for blocks that fail to build.
func ParseWith(document string, handler block.ErrorHandler) (*htmlnode.Parent, error) {
	return block.Parse(document, handler)
}
