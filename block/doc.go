/*
Package block splits a Markdown document into blocks, classifies each block
and builds the HTML subtree for it.

Blocks are separated by blank lines. Each block is classified as exactly one
of heading, fenced code, quote, unordered list, ordered list or paragraph,
tried in that order. Inline content of all blocks except fenced code is
handed to package inline.
*/
package block

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdhtml.block'.
func tracer() tracing.Trace {
	return tracing.Select("mdhtml.block")
}
