package ui

import (
	"strings"

	"github.com/gubarz/mdhtml/block"
	"github.com/gubarz/mdhtml/htmlnode"
	"github.com/gubarz/mdhtml/internal/pretty"
)

// ============================================================================
// Block Item
// ============================================================================

// blockItem wraps one document block with its rendering for display
type blockItem struct {
	index  int        // 1-based block position
	kind   block.Type // classification result
	source string     // block source text
	html   string     // indented HTML, empty when err is set
	err    error      // build or render failure
}

// loadItems splits a document and renders every block on its own, so that a
// failing block is shown with its error instead of hiding the rest
func loadItems(document string) []blockItem {
	blocks := block.Split(document)
	items := make([]blockItem, 0, len(blocks))
	for i, src := range blocks {
		items = append(items, newBlockItem(i+1, src))
	}
	return items
}

// newBlockItem classifies, builds and renders a single block
func newBlockItem(index int, src string) blockItem {
	item := blockItem{index: index, kind: block.Classify(src), source: src}
	node, err := block.Build(src, item.kind)
	if err != nil {
		item.err = err
		return item
	}
	html, err := htmlnode.Render(node)
	if err != nil {
		item.err = err
		return item
	}
	if formatted, err := pretty.Format(html); err == nil {
		html = strings.TrimSuffix(formatted, "\n")
	}
	item.html = html
	return item
}

// matchesQuery checks if the block item matches all search words
func (item *blockItem) matchesQuery(words []string) bool {
	for _, word := range words {
		if !item.containsWord(word) {
			return false
		}
	}
	return true
}

// containsWord checks the type name first, then the source (case-insensitive)
func (item *blockItem) containsWord(word string) bool {
	if containsIgnoreCase(item.kind.String(), word) {
		return true
	}
	if item.err != nil && containsIgnoreCase("error", word) {
		return true
	}
	return containsIgnoreCase(item.source, word)
}

// containsIgnoreCase is a case-insensitive substring check; substr must be lowercase
func containsIgnoreCase(s, substr string) bool {
	if len(substr) > len(s) {
		return false
	}
	return strings.Contains(strings.ToLower(s), substr)
}
