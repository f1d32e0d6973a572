package block

import (
	"fmt"

	"github.com/gubarz/mdhtml/htmlnode"
)

// Error reports a block that could not be built.
type Error struct {
	Index int    // 1-based position of the block in the document
	Block string // block source text
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("block %d: %v", e.Index, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrorHandler decides what happens to a block that failed to build.
// Returning nil skips the block; returning an error aborts the parse with it.
type ErrorHandler func(err *Error) error

// ParseDocument builds the tree for a whole document: every block becomes a
// child of one div, in document order. The first failing block aborts the
// parse with an *Error.
func ParseDocument(document string) (*htmlnode.Parent, error) {
	return Parse(document, nil)
}

// Parse is ParseDocument with control over failing blocks. A nil handler
// aborts on the first failure.
func Parse(document string, handler ErrorHandler) (*htmlnode.Parent, error) {
	blocks := Split(document)
	children := make([]htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		t := Classify(b)
		tracer().Debugf("block %d classified as %s", i+1, t)
		n, err := Build(b, t)
		if err == nil {
			children = append(children, n)
			continue
		}
		blockErr := &Error{Index: i + 1, Block: b, Err: err}
		tracer().Debugf("%v", blockErr)
		if handler == nil {
			return nil, blockErr
		}
		if err := handler(blockErr); err != nil {
			return nil, err
		}
	}
	return htmlnode.NewParent("div", children)
}
